package entity

// PopularSymbols lists the popular Indian stocks in display order.
var PopularSymbols = []Symbol{
	{Symbol: "RELIANCE", Name: "Reliance Industries Ltd"},
	{Symbol: "TCS", Name: "Tata Consultancy Services Ltd"},
	{Symbol: "INFY", Name: "Infosys Ltd"},
	{Symbol: "HDFC", Name: "HDFC Bank Ltd"},
	{Symbol: "ICICIBANK", Name: "ICICI Bank Ltd"},
	{Symbol: "SBIN", Name: "State Bank of India"},
	{Symbol: "BHARTIARTL", Name: "Bharti Airtel Ltd"},
	{Symbol: "ITC", Name: "ITC Ltd"},
	{Symbol: "KOTAKBANK", Name: "Kotak Mahindra Bank Ltd"},
	{Symbol: "LT", Name: "Larsen & Toubro Ltd"},
}

// MarketIndices lists the tracked indices in display order.
var MarketIndices = []Symbol{
	{Symbol: "NIFTY50", Name: "Nifty 50"},
	{Symbol: "SENSEX", Name: "BSE Sensex"},
	{Symbol: "BANKNIFTY", Name: "Bank Nifty"},
	{Symbol: "NIFTYIT", Name: "Nifty IT"},
}

// FundHouses are the asset management companies synthetic funds are drawn from.
var FundHouses = []string{"SBI", "HDFC", "ICICI", "Aditya Birla", "UTI"}

var popularNames = func() map[string]string {
	m := make(map[string]string, len(PopularSymbols))
	for _, s := range PopularSymbols {
		m[s.Symbol] = s.Name
	}
	return m
}()

// LookupName returns the catalog name for symbol.
func LookupName(symbol string) (string, bool) {
	name, ok := popularNames[symbol]
	return name, ok
}
