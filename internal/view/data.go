package view

import "github.com/iliyamo/iavo-ui/internal/model"

// HomeData is the view state of the health page. An empty Health renders
// the loading placeholder.
type HomeData struct {
	Health string
}

// ProfileData is the view state of the profile page.
type ProfileData struct {
	Form     model.ProfileForm
	Response string
}
