package navigation

// PageID is the symbolic name of a page. Navigation controls target pages by
// ID so their position in the sidebar and the content stack can change freely.
type PageID string

const (
	PageHome     PageID = "home"
	PageSearch   PageID = "search"
	PageChat     PageID = "chat"
	PageSettings PageID = "settings"
)

// Page is a display unit that can be shown in the shell's content area.
type Page interface {
	ID() PageID
	Title() string
	Icon() string
}

// Descriptor is the frontend view of a registered page.
type Descriptor struct {
	Index int    `json:"index"`
	ID    PageID `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

func describe(index int, p Page) Descriptor {
	return Descriptor{Index: index, ID: p.ID(), Title: p.Title(), Icon: p.Icon()}
}
