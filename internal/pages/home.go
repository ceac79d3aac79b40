package pages

import "synapsetalk/internal/navigation"

const (
	AppName   = "SynapseTalk"
	Copyright = "©2025 Tudo Tech. All rights reserved."
)

// HomeView is what the homepage renders: a centred title and a footer.
type HomeView struct {
	Title  string `json:"title"`
	Footer string `json:"footer"`
}

type Home struct{}

func NewHome() *Home {
	return &Home{}
}

func (h *Home) ID() navigation.PageID { return navigation.PageHome }
func (h *Home) Title() string         { return AppName }
func (h *Home) Icon() string          { return "assets/home.svg" }

func (h *Home) View() HomeView {
	return HomeView{Title: AppName, Footer: Copyright}
}
