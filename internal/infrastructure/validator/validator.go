package validator

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

// Register adds the domain tags to v: vote, platform, notblank.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("vote", voteFL); err != nil {
		return err
	}
	if err := v.RegisterValidation("platform", platformFL); err != nil {
		return err
	}
	return v.RegisterValidation("notblank", notBlankFL)
}

// voteFL accepts "like" and "dislike" in any case.
func voteFL(fl validator.FieldLevel) bool {
	return entity.Vote(strings.ToLower(fl.Field().String())).IsValid()
}

func platformFL(fl validator.FieldLevel) bool {
	switch usecasecontract.SharePlatform(strings.ToLower(fl.Field().String())) {
	case usecasecontract.SharePlatformGmail, usecasecontract.SharePlatformFacebook, usecasecontract.SharePlatformTwitter:
		return true
	}
	return false
}

// notBlankFL rejects strings made only of whitespace.
func notBlankFL(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
}
