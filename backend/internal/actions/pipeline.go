package actions

import (
	"context"
	stderrors "errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/mitchellh/mapstructure"

	"aitools/backend/internal/adapter"
	"aitools/backend/internal/constants"
	"aitools/backend/internal/normalize"
	apperrors "aitools/backend/pkg/errors"
)

// action is one registered entry of the dispatch table
type action interface {
	info() Info
	run(ctx context.Context, d *Dispatcher, params map[string]any) (Envelope[any], error)
}

// clamper is implemented by params with numeric ranges
type clamper interface {
	clamp()
}

// checker is implemented by params with cross-field rules validator tags cannot express
type checker interface {
	check() error
}

var errNoResult = stderrors.New("output contained no usable items")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// bind decodes params onto defaults, validates and clamps them.
// Nil values and blank strings count as absent so defaults apply.
func bind[P any](defaults P, params map[string]any) (P, error) {
	present := make(map[string]any, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		present[k] = v
	}

	p := defaults
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return p, err
	}
	if err := dec.Decode(present); err != nil {
		return p, decodeError(err)
	}

	if err := validate.Struct(p); err != nil {
		return p, validationError(err)
	}
	if c, ok := any(&p).(clamper); ok {
		c.clamp()
	}
	if c, ok := any(&p).(checker); ok {
		if err := c.check(); err != nil {
			return p, err
		}
	}
	return p, nil
}

func decodeError(err error) error {
	var merr *mapstructure.Error
	if stderrors.As(err, &merr) && len(merr.Errors) > 0 {
		return apperrors.NewInvalidInput("params", merr.Errors[0])
	}
	return apperrors.NewInvalidInput("params", err.Error())
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewInvalidInput("params", err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "oneof":
		return apperrors.NewInvalidInput(fe.Field(), "must be one of: "+strings.Join(splitOneOf(fe.Param()), ", "))
	case "notblank", "required":
		return apperrors.NewInvalidInput(fe.Field(), "must not be blank")
	default:
		return apperrors.NewInvalidInput(fe.Field(), "failed "+fe.Tag()+" check")
	}
}

// textAction is a prompt → text generation → normalized result pipeline
type textAction[P any, T any] struct {
	name        string
	category    string
	tool        string
	description string
	mode        Mode
	failure     string
	defaults    func() P
	prepare     func(d *Dispatcher, p *P) error
	prompt      func(p P) string
	normalize   func(raw string) (T, normalize.Confidence, bool)
}

func (a textAction[P, T]) info() Info {
	return Info{
		Name:        a.name,
		Category:    a.category,
		Tool:        a.tool,
		Description: a.description,
		Mode:        a.mode,
		Params:      describeParams(a.defaults()),
	}
}

func (a textAction[P, T]) run(ctx context.Context, d *Dispatcher, params map[string]any) (Envelope[any], error) {
	p, err := bind(a.defaults(), params)
	if err != nil {
		return Envelope[any]{}, err
	}
	if a.prepare != nil {
		if err := a.prepare(d, &p); err != nil {
			return Envelope[any]{}, err
		}
	}

	start := time.Now()
	raw, err := d.generate(ctx, a.mode, a.prompt(p))
	if err != nil {
		d.fail(a.name, a.mode, err, start)
		return Failed[any](a.failure), nil
	}

	result, confidence, ok := a.normalize(raw)
	if !ok {
		d.fail(a.name, a.mode, errNoResult, start)
		return Failed[any](a.failure), nil
	}

	d.succeed(a.name, a.mode, confidence, start)
	return Succeeded[any](result, confidence), nil
}

// imageRequest is what an image action asks the URL builder for
type imageRequest struct {
	prompt string
	seeds  []int64
	opts   adapter.ImageOptions
}

// imageAction builds image URLs. No network call is made.
type imageAction[P any] struct {
	name        string
	category    string
	tool        string
	description string
	failure     string
	defaults    func() P
	request     func(p P) imageRequest
}

func (a imageAction[P]) info() Info {
	return Info{
		Name:        a.name,
		Category:    a.category,
		Tool:        a.tool,
		Description: a.description,
		Mode:        ModeImage,
		Params:      describeParams(a.defaults()),
	}
}

func (a imageAction[P]) run(ctx context.Context, d *Dispatcher, params map[string]any) (Envelope[any], error) {
	p, err := bind(a.defaults(), params)
	if err != nil {
		return Envelope[any]{}, err
	}

	start := time.Now()
	if err := ctx.Err(); err != nil {
		d.fail(a.name, ModeImage, apperrors.NewContextCancelled("image urls", err), start)
		return Failed[any](a.failure), nil
	}
	if d.images == nil {
		d.fail(a.name, ModeImage, apperrors.NewProviderFailed(constants.ProviderPollinations, stderrors.New("image builder not configured")), start)
		return Failed[any](a.failure), nil
	}

	req := a.request(p)
	urls := d.images.ImageVariations(req.prompt, req.seeds, req.opts)
	if len(urls) == 0 || len(urls) != len(req.seeds) {
		d.fail(a.name, ModeImage, errNoResult, start)
		return Failed[any](a.failure), nil
	}

	images := make([]Image, len(urls))
	for i, u := range urls {
		images[i] = Image{URL: u, Seed: req.seeds[i]}
	}

	d.succeed(a.name, ModeImage, "", start)
	return Succeeded[any](images, ""), nil
}

// Normalizers shared by the registry

func asText(raw string) (string, normalize.Confidence, bool) {
	return normalize.PassThrough(raw), "", true
}

func asTrimmed(raw string) (string, normalize.Confidence, bool) {
	out := normalize.Trimmed(raw)
	return out, "", out != ""
}

func asList(raw string) ([]string, normalize.Confidence, bool) {
	items := normalize.SplitList(raw)
	return items, "", len(items) > 0
}

func asHashtags(raw string) ([]string, normalize.Confidence, bool) {
	tags := normalize.SplitHashtags(raw)
	return tags, "", len(tags) > 0
}

func structured[T any](parse func(string) (T, normalize.Confidence)) func(string) (T, normalize.Confidence, bool) {
	return func(raw string) (T, normalize.Confidence, bool) {
		v, c := parse(raw)
		return v, c, true
	}
}
