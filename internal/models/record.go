package models

// RawRecord - строка таблицы показаний в том виде, в котором она пришла из CSV или JSON
type RawRecord struct {
	Locality   string `json:"locality"`
	WasteType  string `json:"waste_type"`
	Confidence string `json:"confidence"`
	Timestamp  string `json:"timestamp,omitempty"`
	Lat        string `json:"lat,omitempty"`
	Lng        string `json:"lng,omitempty"`
	Collector  string `json:"collector,omitempty"`
}

// Record - показание датчика после приведения типов и подстановки значений по умолчанию
type Record struct {
	Locality   string   `json:"locality"`
	WasteType  string   `json:"waste_type"`
	Confidence float64  `json:"confidence"`
	Timestamp  string   `json:"timestamp,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Collector  string   `json:"collector,omitempty"`
}

// HasLocation сообщает, есть ли у записи пригодные для карты координаты
func (r Record) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}
