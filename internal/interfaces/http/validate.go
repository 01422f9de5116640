package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate est partagé par tous les handlers : l'instance met en cache les
// métadonnées de struct, elle doit être unique.
var validate = validator.New()

// valider applique les tags `validate:` du DTO et renvoie un message lisible
// listant les champs en faute, ou nil.
func valider(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	champs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		champs = append(champs, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("champs invalides : %s", strings.Join(champs, ", "))
}
