package model

// DiseaseReport is a farmer-submitted (or seeded historical) record of
// a crop disease sighting. Fields are stored lower-cased; ReportDate is
// a YYYY-MM-DD string.
type DiseaseReport struct {
	Crop       string `json:"crop"`
	Disease    string `json:"disease"`
	Location   string `json:"location"`
	ReportDate string `json:"report_date"`
}
