package content

// Site is the full static content catalogue of the agency site.
type Site struct {
	Brand      Brand      `json:"brand" yaml:"brand"`
	Hero       Hero       `json:"hero" yaml:"hero"`
	Highlights Highlights `json:"highlights" yaml:"highlights"`
	Services   Section    `json:"services" yaml:"services"`
	Featured   Featured   `json:"featured" yaml:"featured"`
	CTA        CTA        `json:"cta" yaml:"cta"`
	Portfolio  Portfolio  `json:"portfolio" yaml:"portfolio"`
	Packages   Packages   `json:"packages" yaml:"packages"`
	About      About      `json:"about" yaml:"about"`
	Contact    Contact    `json:"contact" yaml:"contact"`
	Footer     Footer     `json:"footer" yaml:"footer"`
}

type Brand struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
}

// Hero is the top of the home page. Keywords rotate in the hero badge.
type Hero struct {
	Headline        []string `json:"headline" yaml:"headline"`
	Keywords        []string `json:"keywords" yaml:"keywords"`
	Lead            string   `json:"lead" yaml:"lead"`
	PrimaryAction   string   `json:"primaryAction" yaml:"primary_action"`
	SecondaryAction string   `json:"secondaryAction" yaml:"secondary_action"`
}

type Item struct {
	Letter      string `json:"letter,omitempty" yaml:"letter"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Highlights struct {
	Heading []string `json:"heading" yaml:"heading"`
	Items   []Item   `json:"items" yaml:"items"`
}

// Section is a titled list of items.
type Section struct {
	Eyebrow string `json:"eyebrow" yaml:"eyebrow"`
	Title   string `json:"title" yaml:"title"`
	Lead    string `json:"lead" yaml:"lead"`
	Items   []Item `json:"items" yaml:"items"`
}

type Showcase struct {
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Metrics     []string `json:"metrics" yaml:"metrics"`
}

type Featured struct {
	Eyebrow string     `json:"eyebrow" yaml:"eyebrow"`
	Title   string     `json:"title" yaml:"title"`
	Lead    string     `json:"lead" yaml:"lead"`
	Items   []Showcase `json:"items" yaml:"items"`
}

type CTA struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Action      string `json:"action" yaml:"action"`
}

// Project is a portfolio entry.
type Project struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Year        string   `json:"year" yaml:"year"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
	Metrics     []string `json:"metrics" yaml:"metrics"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

type Portfolio struct {
	Eyebrow    string    `json:"eyebrow" yaml:"eyebrow"`
	Title      string    `json:"title" yaml:"title"`
	Lead       string    `json:"lead" yaml:"lead"`
	Categories []string  `json:"categories" yaml:"categories"`
	Projects   []Project `json:"projects" yaml:"projects"`
}

// Plan is a monthly service package.
type Plan struct {
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Period      string   `json:"period" yaml:"period"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	Popular     bool     `json:"popular" yaml:"popular"`
}

type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type Packages struct {
	Eyebrow string `json:"eyebrow" yaml:"eyebrow"`
	Title   string `json:"title" yaml:"title"`
	Lead    string `json:"lead" yaml:"lead"`
	Plans   []Plan `json:"plans" yaml:"plans"`
	FAQ     []FAQ  `json:"faq" yaml:"faq"`
}

type Stat struct {
	Number      string `json:"number" yaml:"number"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

type Member struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Image string `json:"image" yaml:"image"`
	Bio   string `json:"bio" yaml:"bio"`
}

type Award struct {
	Year         string `json:"year" yaml:"year"`
	Award        string `json:"award" yaml:"award"`
	Organization string `json:"organization" yaml:"organization"`
}

type About struct {
	Lead    string   `json:"lead" yaml:"lead"`
	Mission string   `json:"mission" yaml:"mission"`
	Vision  string   `json:"vision" yaml:"vision"`
	Values  []Item   `json:"values" yaml:"values"`
	Stats   []Stat   `json:"stats" yaml:"stats"`
	Team    []Member `json:"team" yaml:"team"`
	Awards  []Award  `json:"awards" yaml:"awards"`
}

// Channel is an alternative way to reach the agency.
type Channel struct {
	Title       string `json:"title" yaml:"title"`
	Info        string `json:"info" yaml:"info"`
	Description string `json:"description" yaml:"description"`
	Href        string `json:"href" yaml:"href"`
}

type Contact struct {
	Eyebrow      string    `json:"eyebrow" yaml:"eyebrow"`
	Title        string    `json:"title" yaml:"title"`
	Lead         string    `json:"lead" yaml:"lead"`
	SuccessTitle string    `json:"successTitle" yaml:"success_title"`
	SuccessBody  string    `json:"successBody" yaml:"success_body"`
	Channels     []Channel `json:"channels" yaml:"channels"`
}

type Footer struct {
	Services        []string `json:"services" yaml:"services"`
	Socials         []string `json:"socials" yaml:"socials"`
	Email           string   `json:"email" yaml:"email"`
	Phone           string   `json:"phone" yaml:"phone"`
	PhoneHref       string   `json:"phoneHref" yaml:"phone_href"`
	Location        string   `json:"location" yaml:"location"`
	NewsletterTitle string   `json:"newsletterTitle" yaml:"newsletter_title"`
	NewsletterBody  string   `json:"newsletterBody" yaml:"newsletter_body"`
	Copyright       string   `json:"copyright" yaml:"copyright"`
	Legal           []string `json:"legal" yaml:"legal"`
}
