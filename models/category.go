package models

type Category struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
}
