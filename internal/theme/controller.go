package theme

import (
	"context"

	"go.uber.org/zap"
)

// Controller applies and toggles theme preferences.
type Controller struct {
	store    Store
	fallback Mode
	logger   *zap.Logger
}

// NewController creates a controller. A nil store disables persistence; an
// invalid fallback means Light.
func NewController(store Store, fallback Mode, logger *zap.Logger) *Controller {
	if !fallback.Valid() {
		fallback = Light
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, fallback: fallback, logger: logger}
}

// Resolve returns the persisted mode for visitorID if there is one, else the
// mode the system hint asks for, else the fallback.
func (c *Controller) Resolve(ctx context.Context, visitorID string, hint Hint) (Mode, error) {
	mode, ok, err := c.Saved(ctx, visitorID)
	if err != nil {
		return "", err
	}
	if ok {
		return mode, nil
	}
	return c.Default(hint), nil
}

// Saved returns the persisted mode for visitorID, if any.
func (c *Controller) Saved(ctx context.Context, visitorID string) (Mode, bool, error) {
	if c.store == nil || visitorID == "" {
		return "", false, nil
	}
	return c.store.Get(ctx, visitorID)
}

// Default is the mode for a visitor without a saved preference.
func (c *Controller) Default(hint Hint) Mode {
	switch hint {
	case HintDark:
		return Dark
	case HintLight:
		return Light
	}
	return c.fallback
}

// HintFor turns a mode the visitor is already seeing into an equivalent hint.
func HintFor(m Mode) Hint {
	if m == Dark {
		return HintDark
	}
	return HintLight
}

// Toggle flips the resolved mode and persists the result.
func (c *Controller) Toggle(ctx context.Context, visitorID string, hint Hint) (Mode, error) {
	current, err := c.Resolve(ctx, visitorID, hint)
	if err != nil {
		return "", err
	}
	next := current.Flip()
	if err := c.Set(ctx, visitorID, next); err != nil {
		return "", err
	}
	return next, nil
}

// Set persists mode for visitorID. Without a store or visitor it does nothing.
func (c *Controller) Set(ctx context.Context, visitorID string, mode Mode) error {
	if c.store == nil || visitorID == "" {
		return nil
	}
	if err := c.store.Set(ctx, visitorID, mode); err != nil {
		return err
	}
	c.logger.Debug("theme saved", zap.String("visitor", visitorID), zap.String("theme", string(mode)))
	return nil
}
