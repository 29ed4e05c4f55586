// Package forms turns submitted HTML form values into typed, validated
// structures. Validation runs here, at the boundary, before anything reaches
// the store.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"showbill/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error messages use the submitted field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return genreSet[fl.Field().String()]
	})
	_ = v.RegisterValidation("us_state", func(fl validator.FieldLevel) bool {
		return stateSet[fl.Field().String()]
	})

	return v
}

// ValidationError reports why a submission was rejected, keyed by form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// VenueForm is the typed field set for creating or editing a venue.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,us_state"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" validate:"required,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=500"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"required_if=SeekingTalent true,max=500"`
}

// ParseVenueForm reads a venue submission from form values.
func ParseVenueForm(values url.Values) VenueForm {
	return VenueForm{
		Name:               strings.TrimSpace(values.Get("name")),
		City:               strings.TrimSpace(values.Get("city")),
		State:              values.Get("state"),
		Address:            strings.TrimSpace(values.Get("address")),
		Phone:              strings.TrimSpace(values.Get("phone")),
		Genres:             values["genres"],
		ImageLink:          strings.TrimSpace(values.Get("image_link")),
		FacebookLink:       strings.TrimSpace(values.Get("facebook_link")),
		WebsiteLink:        strings.TrimSpace(values.Get("website_link")),
		SeekingTalent:      checked(values.Get("seeking_talent")),
		SeekingDescription: strings.TrimSpace(values.Get("seeking_description")),
	}
}

// Validate reports a *ValidationError when any field is missing or malformed.
func (f VenueForm) Validate() error {
	return translate(validate.Struct(f))
}

// Venue builds the store model from a validated form.
func (f VenueForm) Venue() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		Genres:             f.Genres,
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.WebsiteLink,
		FacebookLink:       f.FacebookLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
		ImageLink:          f.ImageLink,
	}
}

// ArtistForm is the typed field set for creating or editing an artist.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,us_state"`
	Phone              string   `form:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" validate:"required,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=500"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"required_if=SeekingVenue true,max=500"`
}

// ParseArtistForm reads an artist submission from form values.
func ParseArtistForm(values url.Values) ArtistForm {
	return ArtistForm{
		Name:               strings.TrimSpace(values.Get("name")),
		City:               strings.TrimSpace(values.Get("city")),
		State:              values.Get("state"),
		Phone:              strings.TrimSpace(values.Get("phone")),
		Genres:             values["genres"],
		ImageLink:          strings.TrimSpace(values.Get("image_link")),
		FacebookLink:       strings.TrimSpace(values.Get("facebook_link")),
		WebsiteLink:        strings.TrimSpace(values.Get("website_link")),
		SeekingVenue:       checked(values.Get("seeking_venue")),
		SeekingDescription: strings.TrimSpace(values.Get("seeking_description")),
	}
}

// Validate reports a *ValidationError when any field is missing or malformed.
func (f ArtistForm) Validate() error {
	return translate(validate.Struct(f))
}

// Artist builds the store model from a validated form.
func (f ArtistForm) Artist() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.WebsiteLink,
		FacebookLink:       f.FacebookLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
		ImageLink:          f.ImageLink,
	}
}

// ShowForm is the typed field set for listing a new show.
type ShowForm struct {
	ArtistID  int64     `form:"artist_id" validate:"required"`
	VenueID   int64     `form:"venue_id" validate:"required"`
	StartTime time.Time `form:"start_time" validate:"required"`

	parseErrs map[string]string
}

// startTimeLayouts covers datetime-local inputs and the plain text format
// the original listing form used.
var startTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseShowForm reads a show submission from form values. Unparseable ids
// and timestamps are reported by Validate, not here.
func ParseShowForm(values url.Values) ShowForm {
	f := ShowForm{parseErrs: make(map[string]string)}

	f.ArtistID = parseID(values.Get("artist_id"), "artist_id", f.parseErrs)
	f.VenueID = parseID(values.Get("venue_id"), "venue_id", f.parseErrs)

	if raw := strings.TrimSpace(values.Get("start_time")); raw != "" {
		t, err := parseStartTime(raw)
		if err != nil {
			f.parseErrs["start_time"] = "must be a valid timestamp"
		} else {
			f.StartTime = t
		}
	}

	return f
}

// Validate reports a *ValidationError when any field is missing or malformed.
func (f ShowForm) Validate() error {
	fields := make(map[string]string, len(f.parseErrs))
	for name, msg := range f.parseErrs {
		fields[name] = msg
	}

	if verr := translate(validate.Struct(f)); verr != nil {
		var v *ValidationError
		if !errors.As(verr, &v) {
			return verr
		}
		for name, msg := range v.Fields {
			if _, dup := fields[name]; !dup {
				fields[name] = msg
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Show builds the store model from a validated form.
func (f ShowForm) Show() *models.Show {
	return &models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: f.StartTime,
	}
}

func parseID(raw, field string, errs map[string]string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errs[field] = "must be a positive number"
		return 0
	}
	return id
}

func parseStartTime(raw string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// checked reports whether a checkbox value was submitted as on.
func checked(value string) bool {
	switch strings.ToLower(value) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, dup := fields[name]; dup {
			continue
		}
		fields[name] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when seeking is enabled"
	case "url":
		return "must be a valid URL"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "genre":
		return "is not a recognized genre"
	case "us_state":
		return "is not a recognized state"
	}
	return "is invalid"
}
