package models

// SettingsForm holds the editable fields of the settings page. ModelRepos is
// the display form of the repository list: one repository per line.
type SettingsForm struct {
	OpenAIKey        string `json:"openaiApiKey"`
	GoogleKey        string `json:"googleApiKey"`
	HuggingFaceToken string `json:"huggingFaceToken"`
	ModelRepos       string `json:"modelRepos"`
}
