package model

// ProfileForm is the profile update form. Field order is the wire order of
// the JSON body sent to the backend.
type ProfileForm struct {
	CreatorID string `json:"creator_id" form:"creator_id"`
	Name      string `json:"name" form:"name"`
	Tier      string `json:"tier" form:"tier"`
}

// Complete reports whether every field is non-empty. Whitespace counts as
// a value, like the browser's required attribute.
func (f ProfileForm) Complete() bool {
	return f.CreatorID != "" && f.Name != "" && f.Tier != ""
}

// ErrUpdatingProfile is shown in place of the backend response whenever
// the update call fails for any reason.
const ErrUpdatingProfile = "Error updating profile"
