// Package catalogmanager implements the course and placement catalog:
// input normalization, batched validation, and persistence. Handlers
// hand it raw request JSON; it hands back fully-populated records or an
// error carrying every validation failure at once.
package catalogmanager

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/catcommon"
	"campussrv/internal/catalogsrv/db"
	"campussrv/internal/catalogsrv/db/dberror"
	"campussrv/internal/catalogsrv/db/models"
	schemaerr "campussrv/internal/catalogsrv/schema/errors"
	"campussrv/internal/catalogsrv/schema/schemavalidator"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

const shortDescriptionMaxLength = 150

// courseSchema is the admin form input for a new course. Numeric fields
// are pointers so an absent field can be told apart from a zero.
type courseSchema struct {
	Title            string          `json:"title" validate:"required"`
	Category         string          `json:"category" validate:"required,categoryValidator"`
	Level            string          `json:"level" validate:"required,courseLevelValidator"`
	Language         string          `json:"language" validate:"omitempty,languageValidator"`
	Mode             string          `json:"mode" validate:"omitempty,modeValidator"`
	ShortDescription string          `json:"shortDescription" validate:"required,max=150"`
	Description      string          `json:"description"`
	FullDescription  string          `json:"fullDescription"`
	Thumbnail        string          `json:"thumbnail" validate:"required"`
	PreviewVideo     string          `json:"previewVideo"`
	Curriculum       json.RawMessage `json:"curriculum"`
	KeyHighlights    StringList      `json:"keyHighlights"`
	ToolsCovered     StringList      `json:"toolsCovered"`
	HiringPartners   StringList      `json:"hiringPartners"`
	Price            *float64        `json:"price" validate:"required"`
	DiscountPrice    *float64        `json:"discountPrice"`
	PlacementSupport bool            `json:"placementSupport"`
	AveragePackage   string          `json:"averagePackage"`
	IsPopular        bool            `json:"isPopular"`
	StartDate        string          `json:"startDate" validate:"required,dateValidator"`
	SeatsAvailable   *int            `json:"seatsAvailable"`
	MetaTitle        string          `json:"metaTitle"`
	MetaDescription  string          `json:"metaDescription"`
}

// courseModule is one entry of the course curriculum.
type courseModule struct {
	ModuleTitle string     `json:"moduleTitle"`
	Topics      StringList `json:"topics"`
}

// courseDoc is the persisted course document carried in the info JSONB
// column. Identity, slug, title, and category live in their own columns.
type courseDoc struct {
	Level            string         `json:"level"`
	Language         string         `json:"language"`
	Mode             string         `json:"mode"`
	ShortDescription string         `json:"shortDescription"`
	Description      string         `json:"description"`
	FullDescription  string         `json:"fullDescription"`
	Thumbnail        string         `json:"thumbnail"`
	PreviewVideo     string         `json:"previewVideo,omitempty"`
	Curriculum       []courseModule `json:"curriculum"`
	KeyHighlights    []string       `json:"keyHighlights"`
	ToolsCovered     []string       `json:"toolsCovered"`
	HiringPartners   []string       `json:"hiringPartners"`
	Price            float64        `json:"price"`
	DiscountPrice    float64        `json:"discountPrice"`
	PlacementSupport bool           `json:"placementSupport"`
	AveragePackage   string         `json:"averagePackage,omitempty"`
	IsPopular        bool           `json:"isPopular"`
	StartDate        string         `json:"startDate"`
	SeatsAvailable   int            `json:"seatsAvailable"`
	MetaTitle        string         `json:"metaTitle,omitempty"`
	MetaDescription  string         `json:"metaDescription,omitempty"`
}

// Course is the external representation of a course record.
type Course struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	courseDoc
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// normalize trims string fields, keeps description and fullDescription
// in sync, and applies enum defaults. Runs before validation so the
// validated values are the ones persisted.
func (cs *courseSchema) normalize() {
	cs.Title = strings.TrimSpace(cs.Title)
	cs.Category = strings.TrimSpace(cs.Category)
	cs.Level = strings.TrimSpace(cs.Level)
	cs.Language = strings.TrimSpace(cs.Language)
	cs.Mode = strings.TrimSpace(cs.Mode)
	cs.ShortDescription = strings.TrimSpace(cs.ShortDescription)
	cs.Description = strings.TrimSpace(cs.Description)
	cs.FullDescription = strings.TrimSpace(cs.FullDescription)
	cs.Thumbnail = strings.TrimSpace(cs.Thumbnail)
	cs.PreviewVideo = strings.TrimSpace(cs.PreviewVideo)
	cs.AveragePackage = strings.TrimSpace(cs.AveragePackage)
	cs.StartDate = strings.TrimSpace(cs.StartDate)
	cs.MetaTitle = strings.TrimSpace(cs.MetaTitle)
	cs.MetaDescription = strings.TrimSpace(cs.MetaDescription)

	// description is kept for backward compatibility; whichever of the
	// two is supplied populates the other.
	if cs.FullDescription == "" && cs.Description != "" {
		cs.FullDescription = cs.Description
	}
	if cs.Description == "" && cs.FullDescription != "" {
		cs.Description = cs.FullDescription
	}

	if cs.Language == "" {
		cs.Language = string(catcommon.LanguageEnglish)
	}
	if cs.Mode == "" {
		cs.Mode = string(catcommon.ModeOnline)
	}
}

// Validate collects every validation failure in the input instead of
// stopping at the first, so a caller can fix all issues in one round
// trip. It returns the parsed curriculum alongside the failures.
func (cs *courseSchema) Validate() ([]courseModule, schemaerr.ValidationErrors) {
	var validationErrors schemaerr.ValidationErrors

	err := schemavalidator.V().Struct(cs)
	if err != nil {
		validatorErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, append(validationErrors, schemaerr.ErrInvalidSchema)
		}

		value := reflect.ValueOf(cs).Elem()
		typeOfSchema := value.Type()

		for _, e := range validatorErrors {
			jsonFieldName := schemavalidator.GetJSONFieldPath(value, typeOfSchema, e.StructField())

			switch e.Tag() {
			case "required":
				validationErrors = append(validationErrors, schemaerr.ErrMissingRequiredAttribute(jsonFieldName))
			case "categoryValidator":
				validationErrors = append(validationErrors, schemaerr.ErrInvalidEnumValue(jsonFieldName, categoryStrings()))
			case "courseLevelValidator":
				validationErrors = append(validationErrors, schemaerr.ErrInvalidEnumValue(jsonFieldName, levelStrings()))
			case "languageValidator":
				validationErrors = append(validationErrors, schemaerr.ErrInvalidEnumValue(jsonFieldName, languageStrings()))
			case "modeValidator":
				validationErrors = append(validationErrors, schemaerr.ErrInvalidEnumValue(jsonFieldName, modeStrings()))
			case "dateValidator":
				validationErrors = append(validationErrors, schemaerr.ErrInvalidDate(jsonFieldName))
			case "max":
				validationErrors = append(validationErrors, schemaerr.ErrExceedsMaxLength(jsonFieldName, shortDescriptionMaxLength))
			default:
				validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
			}
		}
	}

	if cs.FullDescription == "" {
		validationErrors = append(validationErrors, schemaerr.ErrMissingRequiredAttribute("fullDescription"))
	}

	if cs.Price != nil && *cs.Price < 0 {
		validationErrors = append(validationErrors, schemaerr.ErrNegativeValue("price"))
	}
	if cs.DiscountPrice != nil {
		if *cs.DiscountPrice < 0 {
			validationErrors = append(validationErrors, schemaerr.ErrNegativeValue("discountPrice"))
		} else if *cs.DiscountPrice > 0 && cs.Price != nil && *cs.Price >= 0 && *cs.DiscountPrice >= *cs.Price {
			validationErrors = append(validationErrors, schemaerr.ErrDiscountNotBelowPrice("discountPrice"))
		}
	}
	if cs.SeatsAvailable != nil && *cs.SeatsAvailable < 0 {
		validationErrors = append(validationErrors, schemaerr.ErrNegativeValue("seatsAvailable"))
	}

	modules, moduleErrors := parseCurriculum("curriculum", cs.Curriculum)
	validationErrors = append(validationErrors, moduleErrors...)

	if len(validationErrors) == 0 {
		return modules, nil
	}
	return modules, validationErrors
}

// parseCurriculum parses the curriculum modules array. Empty input
// normalizes to an empty sequence; a structurally invalid module fails
// with a message identifying the offending index.
func parseCurriculum(attr string, raw json.RawMessage) ([]courseModule, schemaerr.ValidationErrors) {
	modules := []courseModule{}
	if len(raw) == 0 || string(raw) == "null" {
		return modules, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return modules, schemaerr.ValidationErrors{schemaerr.ErrInvalidModulesStructure(attr)}
	}

	var validationErrors schemaerr.ValidationErrors
	for i, entry := range entries {
		var module courseModule
		if err := json.Unmarshal(entry, &module); err != nil {
			validationErrors = append(validationErrors,
				schemaerr.ErrInvalidModuleEntry(attr, i, "must be an object with moduleTitle and topics"))
			continue
		}
		module.ModuleTitle = strings.TrimSpace(module.ModuleTitle)
		if module.ModuleTitle == "" {
			validationErrors = append(validationErrors,
				schemaerr.ErrInvalidModuleEntry(attr, i, "missing moduleTitle"))
			continue
		}
		if module.Topics == nil {
			module.Topics = StringList{}
		}
		modules = append(modules, module)
	}

	return modules, validationErrors
}

// toDoc builds the persisted document, applying numeric defaults.
func (cs *courseSchema) toDoc(modules []courseModule) *courseDoc {
	discountPrice := 0.0
	if cs.DiscountPrice != nil {
		discountPrice = *cs.DiscountPrice
	}
	seatsAvailable := 20
	if cs.SeatsAvailable != nil {
		seatsAvailable = *cs.SeatsAvailable
	}

	return &courseDoc{
		Level:            cs.Level,
		Language:         cs.Language,
		Mode:             cs.Mode,
		ShortDescription: cs.ShortDescription,
		Description:      cs.Description,
		FullDescription:  cs.FullDescription,
		Thumbnail:        cs.Thumbnail,
		PreviewVideo:     cs.PreviewVideo,
		Curriculum:       modules,
		KeyHighlights:    orEmpty(cs.KeyHighlights),
		ToolsCovered:     orEmpty(cs.ToolsCovered),
		HiringPartners:   orEmpty(cs.HiringPartners),
		Price:            *cs.Price,
		DiscountPrice:    discountPrice,
		PlacementSupport: cs.PlacementSupport,
		AveragePackage:   cs.AveragePackage,
		IsPopular:        cs.IsPopular,
		StartDate:        cs.StartDate,
		SeatsAvailable:   seatsAvailable,
		MetaTitle:        cs.MetaTitle,
		MetaDescription:  cs.MetaDescription,
	}
}

// Slugify derives the URL slug from a course title: lowercased, with
// runs of non-alphanumeric characters collapsed into single hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// CreateCourse validates and persists a new course. Authorization is
// checked before any parsing. On success the returned course carries
// the generated id and timestamps. A slug collision fails with a
// conflict.
func CreateCourse(ctx context.Context, resourceJSON []byte) (*Course, apperrors.Error) {
	if catcommon.GetUserContext(ctx) == nil {
		return nil, ErrUnauthorized
	}

	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &courseSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	schema.normalize()
	modules, validationErrors := schema.Validate()
	if validationErrors != nil {
		return nil, ErrValidationFailed.Err(validationErrors)
	}

	doc := schema.toDoc(modules)
	infoJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, ErrUnableToSaveObject.Err(err)
	}

	course := &models.Course{
		Slug:     Slugify(schema.Title),
		Title:    schema.Title,
		Category: schema.Category,
	}
	if err := course.Info.Set(infoJSON); err != nil {
		return nil, ErrUnableToSaveObject.Err(err)
	}

	if dbErr := db.DB(ctx).CreateCourse(ctx, course); dbErr != nil {
		if errors.Is(dbErr, dberror.ErrAlreadyExists) {
			return nil, ErrCourseAlreadyExists
		}
		return nil, dbErr
	}

	log.Ctx(ctx).Info().Str("slug", course.Slug).Msg("course created")
	return courseFromModel(ctx, course)
}

// ListCourses returns all courses, most recently updated first.
func ListCourses(ctx context.Context) ([]*Course, apperrors.Error) {
	records, dbErr := db.DB(ctx).ListCourses(ctx)
	if dbErr != nil {
		return nil, dbErr
	}

	courses := make([]*Course, 0, len(records))
	for _, record := range records {
		course, err := courseFromModel(ctx, record)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by id. A malformed id is reported
// the same as a missing record.
func GetCourseByID(ctx context.Context, id string) (*Course, apperrors.Error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrCourseNotFound
	}

	record, dbErr := db.DB(ctx).GetCourseByID(ctx, courseID)
	if dbErr != nil {
		if errors.Is(dbErr, dberror.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, dbErr
	}
	return courseFromModel(ctx, record)
}

// GetCourseBySlug retrieves a course by its slug. Exact match only.
func GetCourseBySlug(ctx context.Context, slug string) (*Course, apperrors.Error) {
	record, dbErr := db.DB(ctx).GetCourseBySlug(ctx, slug)
	if dbErr != nil {
		if errors.Is(dbErr, dberror.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, dbErr
	}
	return courseFromModel(ctx, record)
}

// DeleteCourse deletes a course by id. Deleting an id that does not
// exist has no effect; the operation is idempotent.
func DeleteCourse(ctx context.Context, id string) apperrors.Error {
	if catcommon.GetUserContext(ctx) == nil {
		return ErrUnauthorized
	}

	courseID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidCourseID
	}

	if dbErr := db.DB(ctx).DeleteCourse(ctx, courseID); dbErr != nil {
		return dbErr
	}

	log.Ctx(ctx).Info().Str("course_id", courseID.String()).Msg("course deleted")
	return nil
}

func courseFromModel(ctx context.Context, record *models.Course) (*Course, apperrors.Error) {
	course := &Course{
		ID:        record.CourseID,
		Slug:      record.Slug,
		Title:     record.Title,
		Category:  record.Category,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if err := json.Unmarshal(record.Info.Bytes, &course.courseDoc); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("course_id", record.CourseID.String()).Msg("failed to decode course document")
		return nil, ErrUnableToLoadObject.Err(err)
	}
	return course, nil
}

func orEmpty(s StringList) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func categoryStrings() []string {
	categories := catcommon.Categories()
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}

func levelStrings() []string {
	levels := catcommon.Levels()
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		out = append(out, string(l))
	}
	return out
}

func languageStrings() []string {
	languages := catcommon.Languages()
	out := make([]string, 0, len(languages))
	for _, l := range languages {
		out = append(out, string(l))
	}
	return out
}

func modeStrings() []string {
	modes := catcommon.Modes()
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		out = append(out, string(m))
	}
	return out
}
