package dataset

// dow30 maps the Dow Jones Industrial Average constituents to their ticker
// symbols. It is the built-in sample subject set used when no tickers are
// configured.
var dow30 = map[string]string{
	"American Express Co":                  "AXP",
	"Amgen Inc":                            "AMGN",
	"Apple Inc":                            "AAPL",
	"Boeing Co":                            "BA",
	"Caterpillar Inc":                      "CAT",
	"Cisco Systems Inc":                    "CSCO",
	"Chevron Corp":                         "CVX",
	"Goldman Sachs Group Inc":              "GS",
	"Home Depot Inc":                       "HD",
	"Honeywell International Inc":          "HON",
	"International Business Machines Corp": "IBM",
	"Intel Corp":                           "INTC",
	"Johnson & Johnson":                    "JNJ",
	"Coca-Cola Co":                         "KO",
	"JPMorgan Chase & Co":                  "JPM",
	"McDonald's Corp":                      "MCD",
	"3M Co":                                "MMM",
	"Merck & Co Inc":                       "MRK",
	"Microsoft Corp":                       "MSFT",
	"Nike Inc":                             "NKE",
	"Procter & Gamble Co":                  "PG",
	"Travelers Companies Inc":              "TRV",
	"UnitedHealth Group Inc":               "UNH",
	"Salesforce.Com Inc":                   "CRM",
	"Verizon Communications Inc":           "VZ",
	"Visa Inc":                             "V",
	"Walgreens Boots Alliance Inc":         "WBA",
	"Walmart Inc":                          "WMT",
	"Walt Disney Co":                       "DIS",
	"Dow Inc":                              "DOW",
}

// StockMarket returns the company-name -> ticker-symbol sample map for the
// named stock index. Unknown indices return nil.
func StockMarket(index string) map[string]string {
	switch index {
	case "DOW":
		out := make(map[string]string, len(dow30))
		for name, symbol := range dow30 {
			out[name] = symbol
		}
		return out
	default:
		return nil
	}
}
