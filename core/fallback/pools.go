// ABOUTME: Vocabulary pools for synthesized news headlines
// ABOUTME: Order matters: indexes are drawn from a seeded sequence

package fallback

type newsSource struct {
	Name   string
	Domain string
}

var sourcePool = []newsSource{
	{Name: "TechCrunch", Domain: "techcrunch.com"},
	{Name: "Reuters", Domain: "reuters.com"},
	{Name: "Bloomberg", Domain: "bloomberg.com"},
	{Name: "The Verge", Domain: "theverge.com"},
	{Name: "Finextra", Domain: "finextra.com"},
	{Name: "Fintech News", Domain: "fintechnews.com"},
	{Name: "PYMNTS", Domain: "pymnts.com"},
	{Name: "Telecoms", Domain: "telecoms.com"},
	{Name: "Mobile World Live", Domain: "mobileworldlive.com"},
	{Name: "Sifted", Domain: "sifted.eu"},
	{Name: "Tech.eu", Domain: "tech.eu"},
	{Name: "CoinDesk", Domain: "coindesk.com"},
}

var companyPool = []string{
	"Klarna", "Affirm", "Afterpay", "Zip", "Tabby", "Tamara", "Sunbit", "Upstart", "Revolut",
	"Monzo", "Chime", "Nubank", "Fawry", "Vodafone", "Orange", "T-Mobile", "Verizon", "AT&T",
	"MTN", "Safaricom", "Nokia", "Ericsson", "Samsung", "Apple", "Xiaomi", "Oppo", "Vivo",
}

var topicPool = []string{
	"device financing",
	"BNPL expansion",
	"telco billing",
	"device lock policy",
	"SIM swap protection",
	"merchant partnerships",
	"consumer credit limits",
	"regulatory approval",
	"cross-border payments",
	"network upgrade",
	"fraud prevention",
	"embedded finance",
	"trade-in program",
	"5G rollout",
}

var actionPool = []string{
	"announces",
	"launches",
	"secures",
	"expands",
	"partners with",
	"rolls out",
	"introduces",
	"finalizes",
	"pilots",
	"accelerates",
}

var regionPool = []string{
	"in the US",
	"across Europe",
	"in the GCC",
	"in Southeast Asia",
	"in LATAM",
	"in Africa",
	"in the UK",
	"in India",
	"in MENA",
}
