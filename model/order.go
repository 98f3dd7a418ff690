package model

// Order is the root invoice record. It is read-only input to the renderer;
// missing optional fields degrade to defaults ("N/A", 0, "") at draw time.
type Order struct {
	Header   Header   `json:"header"`
	Event    *Event   `json:"event,omitempty"`
	Product  *Product `json:"product,omitempty"`
	Items    []Item   `json:"items,omitempty"`
	Subtotal int64    `json:"subtotal,omitempty"`
	Fee      int64    `json:"fee,omitempty"`
	Tax      int64    `json:"tax,omitempty"`
	Total    int64    `json:"total,omitempty"`
}

type Header struct {
	Business        string   `json:"business"`
	Application     string   `json:"application"`
	BusinessCity    string   `json:"businessCity"`
	BusinessWebsite string   `json:"businessWebsite"`
	OrderId         string   `json:"orderId"`
	EventId         string   `json:"eventId,omitempty"`
	OrderDate       string   `json:"orderDate"`
	CustomerEmail   string   `json:"customerEmail"`
	Seller          string   `json:"seller"`
	End             string   `json:"end,omitempty"`
	UsageBox        UsageBox `json:"usageBox"`
	AppIcon         AppIcon  `json:"appIcon,omitempty"`
}

type UsageBox struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type AppIcon struct {
	Url           string `json:"url,omitempty"`
	Description   string `json:"description,omitempty"`
	AndroidAppUrl string `json:"androidAppUrl,omitempty"`
	IosAppUrl     string `json:"iosAppUrl,omitempty"`
}

// Event and Product carry the same shape; exactly one is expected per order,
// though the renderer tolerates both or neither.
type Event struct {
	Id       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Details  string   `json:"details,omitempty"`
	Images   []string `json:"images,omitempty"`
	Location Location `json:"location"`
	Start    int64    `json:"start,omitempty"`
	Tickets  []Ticket `json:"tickets,omitempty"`
}

type Product struct {
	Id       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Details  string   `json:"details,omitempty"`
	Images   []string `json:"images,omitempty"`
	Location Location `json:"location"`
	Start    int64    `json:"start,omitempty"`
	Tickets  []Ticket `json:"tickets,omitempty"`
}

type Location struct {
	Name        string      `json:"name"`
	Address     Address     `json:"address"`
	Coordinates Coordinates `json:"coordinates,omitempty"`
}

type Address struct {
	City       string `json:"city"`
	LineOne    string `json:"lineOne"`
	PostalCode string `json:"postalCode"`
	State      string `json:"state"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Ticket is a purchasable admission type. Party is a pointer because the
// source data distinguishes an absent party from party 0; Price relies on the
// zero value (absent means free).
type Ticket struct {
	Id        string         `json:"id"`
	Name      string         `json:"name"`
	Details   string         `json:"details,omitempty"`
	Price     int64          `json:"price,omitempty"`
	Quantity  int64          `json:"quantity,omitempty"`
	SaleStart int64          `json:"saleStart,omitempty"`
	Party     *int64         `json:"party,omitempty"`
	Options   []TicketOption `json:"options,omitempty"`
}

// TicketOption renders only when a response is present; a nil Response means
// the attendee never answered.
type TicketOption struct {
	Title    string  `json:"title"`
	Response *string `json:"response,omitempty"`
}

type Item struct {
	Id        string         `json:"id"`
	Name      string         `json:"name"`
	Price     int64          `json:"price,omitempty"`
	Quantity  int64          `json:"quantity,omitempty"`
	Type      string         `json:"type,omitempty"`
	Details   string         `json:"details,omitempty"`
	Image     string         `json:"image,omitempty"`
	Responses []ItemResponse `json:"responses,omitempty"`
}

type ItemResponse struct {
	Title    string `json:"title"`
	Response string `json:"response"`
}
