package geo

import (
	"database/sql/driver"
	"fmt"
	"math"
)

// Limites aproximados do Brasil usados na política de coordenadas de rotas.
const (
	BrasilLatMin = -34.0
	BrasilLatMax = 6.0
	BrasilLngMin = -74.0
	BrasilLngMax = -32.0
)

// GrausPorKm converte raios em quilômetros para graus (1 grau ~ 111 km).
const GrausPorKm = 1.0 / 111.0

// Ponto é uma geometria POINT em SRID 4326, gravada como EWKT. O PostGIS
// aceita EWKT como entrada textual; a leitura devolve EWKB hex, que fica
// guardado cru — as respostas usam as colunas latitude/longitude.
type Ponto struct {
	Lat float64
	Lng float64
	raw string
}

func NovoPonto(lat, lng float64) Ponto {
	return Ponto{Lat: lat, Lng: lng}
}

func (p Ponto) Value() (driver.Value, error) {
	return fmt.Sprintf("SRID=4326;POINT(%g %g)", p.Lng, p.Lat), nil
}

func (p *Ponto) Scan(valor interface{}) error {
	switch v := valor.(type) {
	case nil:
		return nil
	case []byte:
		p.raw = string(v)
	case string:
		p.raw = v
	default:
		return fmt.Errorf("geo: tipo inesperado %T para Ponto", valor)
	}
	return nil
}

// Linha é uma geometria LINESTRING de dois pontos (origem -> destino).
type Linha struct {
	OrigemLat  float64
	OrigemLng  float64
	DestinoLat float64
	DestinoLng float64
	raw        string
}

func NovaLinha(origemLat, origemLng, destinoLat, destinoLng float64) Linha {
	return Linha{
		OrigemLat:  origemLat,
		OrigemLng:  origemLng,
		DestinoLat: destinoLat,
		DestinoLng: destinoLng,
	}
}

func (l Linha) Value() (driver.Value, error) {
	return fmt.Sprintf("SRID=4326;LINESTRING(%g %g, %g %g)",
		l.OrigemLng, l.OrigemLat, l.DestinoLng, l.DestinoLat), nil
}

func (l *Linha) Scan(valor interface{}) error {
	switch v := valor.(type) {
	case nil:
		return nil
	case []byte:
		l.raw = string(v)
	case string:
		l.raw = v
	default:
		return fmt.Errorf("geo: tipo inesperado %T para Linha", valor)
	}
	return nil
}

// DentroDoBrasil confere se a coordenada cai na caixa delimitadora do
// Brasil, bordas inclusas.
func DentroDoBrasil(lat, lng float64) bool {
	return lat >= BrasilLatMin && lat <= BrasilLatMax &&
		lng >= BrasilLngMin && lng <= BrasilLngMax
}

// CoordenadaValida confere os limites geográficos globais.
func CoordenadaValida(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// DistanciaKm estima a distância entre duas coordenadas pela distância
// euclidiana em graus vezes 111 km.
func DistanciaKm(lat1, lng1, lat2, lng2 float64) float64 {
	return math.Hypot(lat2-lat1, lng2-lng1) * 111.0
}
