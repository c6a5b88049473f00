package impact

// Builtin keyword lists for US economic releases. These are constant
// configuration loaded once at startup and injected into the Classifier;
// nothing mutates them after process start.

// HighKeywords marks the releases that reliably move US markets.
var HighKeywords = []string{
	"FOMC", "Federal Reserve", "Fed", "Interest Rate Decision",
	"CPI", "Consumer Price Index", "Inflation",
	"NFP", "Non-Farm Payroll", "Employment",
	"Unemployment Rate", "Jobs Report",
	"GDP", "Gross Domestic Product",
	"PCE", "Personal Consumption Expenditures", "Core PCE",
	"Retail Sales",
	"ISM Manufacturing", "ISM Services",
	"Jobless Claims", "Initial Jobless Claims",
	"PPI", "Producer Price Index",
	"Durable Goods Orders",
	"Housing Starts", "Building Permits",
	"Consumer Confidence",
	"Existing Home Sales",
	"New Home Sales",
	"Factory Orders",
	"Industrial Production",
	"Capacity Utilization",
}

// MediumKeywords marks secondary indicators worth charting but rarely
// decisive on their own.
var MediumKeywords = []string{
	"Personal Income", "Personal Spending",
	"Advance Retail Sales",
	"Core Retail Sales",
	"Wholesale Inventories",
	"Business Inventories",
	"Construction Spending",
	"Chicago PMI",
	"Philly Fed Manufacturing",
	"Empire State Manufacturing",
	"MBA Mortgage Applications",
	"Conference Board Leading Index",
	"Pending Home Sales",
	"Core PCE Price Index",
	"Continuing Jobless Claims",
	"Average Hourly Earnings",
	"Labor Force Participation",
	"U-6 Unemployment",
	"Export Prices", "Import Prices",
	"Trade Balance",
	"Fed Beige Book",
	"FOMC Minutes",
	"Financial Conditions",
	"Bank Lending Standards",
}

// SpecialKeywords covers political and market-shock headlines. Not part of
// the default classification; merged into the High list only when
// impact.include_special is set in config.
var SpecialKeywords = []string{
	"Trump", "Presidential", "Congressional", "Senate", "House",
	"Tariff", "Trade War", "Inflation Fight", "Rate Cut", "Rate Hike",
	"Market Volatility", "Flash Crash", "Black Swan",
}
