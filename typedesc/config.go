package typedesc

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// ArgumentPolicy decides what happens when a type argument cannot be resolved.
type ArgumentPolicy string

const (
	// StrictArguments fails the whole resolution when any type argument is
	// unrepresentable, so a descriptor never silently loses arity.
	StrictArguments ArgumentPolicy = "strict"

	// DropArguments omits unrepresentable type arguments.
	DropArguments ArgumentPolicy = "drop"
)

// DefaultMaxDepth bounds the nesting a Resolver will walk.
const DefaultMaxDepth = 64

// Config configures a Resolver.
type Config struct {
	// TopType is the name of the universal reference type, used for
	// unbounded and super-bounded wildcards.
	TopType string `schema:"top" validate:"required"`

	// MaxDepth bounds type argument and array nesting. Zero means DefaultMaxDepth.
	MaxDepth int `schema:"maxDepth" validate:"gte=1,lte=4096"`

	// Arguments selects the type argument policy. Empty means StrictArguments.
	Arguments ArgumentPolicy `schema:"args" validate:"oneof=strict drop"`

	// Boxer maps primitives to their boxed equivalents.
	Boxer Boxer `schema:"-" validate:"required"`

	// Logger receives debug records for unrepresentable nodes.
	// Nil means slog.Default().
	Logger *slog.Logger `schema:"-" validate:"-"`
}

// JavaConfig returns the configuration for Java type models.
func JavaConfig() Config {
	return Config{
		TopType:   JavaTopType,
		MaxDepth:  DefaultMaxDepth,
		Arguments: StrictArguments,
		Boxer:     JavaBoxing,
	}
}

// GoConfig returns the configuration for Go type models.
func GoConfig() Config {
	return Config{
		TopType:   GoTopType,
		MaxDepth:  DefaultMaxDepth,
		Arguments: StrictArguments,
		Boxer:     GoBoxing,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) withDefaults() Config {
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Arguments == "" {
		c.Arguments = StrictArguments
	}
	return c
}

// Validate applies defaults and checks c.
func (c Config) Validate() error {
	if err := validate.Struct(c.withDefaults()); err != nil {
		return fmt.Errorf("typedesc: invalid config: %w", err)
	}
	return nil
}

// DecodeConfig overlays values onto base. Recognized keys are "top",
// "maxDepth" and "args"; unknown keys are an error.
func DecodeConfig(base Config, values url.Values) (Config, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)
	cfg := base
	if err := dec.Decode(&cfg, values); err != nil {
		return Config{}, fmt.Errorf("typedesc: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}
