package models

// TransactionRecord is one apartment sale as reported by the trade feed.
// Every field keeps the upstream text, trimmed; Price has "," removed.
type TransactionRecord struct {
	AptName   string `json:"aptName"`
	Price     string `json:"price"`
	Area      string `json:"area"`
	Floor     string `json:"floor"`
	Year      string `json:"year"`
	Month     string `json:"month"`
	Day       string `json:"day"`
	Dong      string `json:"dong"`
	BuildYear string `json:"buildYear"`
	Jibun     string `json:"jibun"`
	DealType  string `json:"dealType"`
	AptDong   string `json:"aptDong"`
}

// TransactionFeed is the parsed result of one feed page.
type TransactionFeed struct {
	Records    []TransactionRecord
	ResultCode string
	ResultMsg  string
	// TotalCount is -1 when the header did not carry it.
	TotalCount int
	PageNo     int
	NumOfRows  int
	Truncated  bool
}

// TransactionResponse is the body of GET /api/apt-trade.
type TransactionResponse struct {
	Region     string              `json:"region"`
	YearMonth  string              `json:"year_month"`
	Count      int                 `json:"count"`
	TotalCount int                 `json:"total_count"`
	Truncated  bool                `json:"truncated"`
	Data       []TransactionRecord `json:"data"`
}

// TradeRequest holds the query parameters of GET /api/apt-trade.
type TradeRequest struct {
	Region    string `form:"region" validate:"required,region"`
	YearMonth string `form:"year_month" validate:"required,yearmonth"`
	PageNo    int    `form:"page_no" validate:"omitempty,min=1"`
	NumOfRows int    `form:"num_of_rows" validate:"omitempty,min=1,max=10000"`
}
