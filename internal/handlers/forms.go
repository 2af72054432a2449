package handlers

import (
	"encoding/json"
	"mime"
	"net/http"
)

// credentialsForm is the body of the register and login forms.
type credentialsForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// decodeCredentials reads a form-encoded or JSON credentials body.
func decodeCredentials(r *http.Request) (credentialsForm, error) {
	var form credentialsForm

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&form)
		return form, err
	}

	if err := r.ParseForm(); err != nil {
		return form, err
	}
	form.Username = r.PostForm.Get("username")
	form.Email = r.PostForm.Get("email")
	form.Password = r.PostForm.Get("password")
	return form, nil
}
