package dto

// ImportJSONRequest carries an exported JSON payload to import. The
// payload is the raw array string produced by the JSON export.
type ImportJSONRequest struct {
	Payload string `json:"payload" binding:"required"`
}

// ImportJSONResponse reports how many bills were imported.
type ImportJSONResponse struct {
	Imported int `json:"imported"`
}

// ExportResponse carries an export payload and its bill count.
type ExportResponse struct {
	Payload string `json:"payload"`
	Count   int    `json:"count"`
}
