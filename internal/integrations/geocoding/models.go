package geocoding

// searchResult элемент ответа /search (координаты приходят строками)
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// cachedLocation запись кэша; Found=false кэширует отсутствие результата
type cachedLocation struct {
	Found bool    `json:"found"`
	Lat   float64 `json:"lat,omitempty"`
	Lng   float64 `json:"lng,omitempty"`
}
