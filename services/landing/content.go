package landing

// Card is a titled entry in a feature grid. Keys resolve through i18n.
type Card struct {
	Icon     string
	TitleKey string
	DescKey  string
}

// Stat is one headline figure of the statistics band
type Stat struct {
	Value    int
	Suffix   string
	LabelKey string
}

// CoreModules are the product modules shown under #features
var CoreModules = []Card{
	{Icon: "receipt", TitleKey: "modules.invoicing.title", DescKey: "modules.invoicing.desc"},
	{Icon: "inventory", TitleKey: "modules.inventory.title", DescKey: "modules.inventory.desc"},
	{Icon: "receivables", TitleKey: "modules.receivables.title", DescKey: "modules.receivables.desc"},
	{Icon: "reports", TitleKey: "modules.reports.title", DescKey: "modules.reports.desc"},
	{Icon: "store", TitleKey: "modules.retail.title", DescKey: "modules.retail.desc"},
	{Icon: "truck", TitleKey: "modules.logistics.title", DescKey: "modules.logistics.desc"},
}

// IndustrySolutions are the sector cards shown under #industries
var IndustrySolutions = []Card{
	{Icon: "store", TitleKey: "industries.retail.title", DescKey: "industries.retail.desc"},
	{Icon: "truck", TitleKey: "industries.logistics.title", DescKey: "industries.logistics.desc"},
	{Icon: "hardhat", TitleKey: "industries.construction.title", DescKey: "industries.construction.desc"},
	{Icon: "wrench", TitleKey: "industries.workshops.title", DescKey: "industries.workshops.desc"},
	{Icon: "utensils", TitleKey: "industries.restaurants.title", DescKey: "industries.restaurants.desc"},
	{Icon: "health", TitleKey: "industries.health.title", DescKey: "industries.health.desc"},
	{Icon: "factory", TitleKey: "industries.manufacturing.title", DescKey: "industries.manufacturing.desc"},
	{Icon: "bank", TitleKey: "industries.finance.title", DescKey: "industries.finance.desc"},
}

// Stats is the figures band
var Stats = []Stat{
	{Value: 98, Suffix: "%", LabelKey: "stats.accuracy"},
	{Value: 70, Suffix: "%", LabelKey: "stats.time_saved"},
	{Value: 5000, Suffix: "+", LabelKey: "stats.companies"},
	{Value: 20, Suffix: "M+", LabelKey: "stats.invoices"},
}

// GlobalFeatures are the cards of the global reach section
var GlobalFeatures = []Card{
	{Icon: "globe", TitleKey: "global.coverage.title", DescKey: "global.coverage.desc"},
	{Icon: "language", TitleKey: "global.languages.title", DescKey: "global.languages.desc"},
	{Icon: "currency", TitleKey: "global.currencies.title", DescKey: "global.currencies.desc"},
	{Icon: "pin", TitleKey: "global.regulations.title", DescKey: "global.regulations.desc"},
}
