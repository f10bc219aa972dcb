package notify

import (
	"context"

	"fyne.io/fyne/v2"
)

// Desktop shows notifications through the fyne application.
type Desktop struct {
	app fyne.App
}

// NewDesktop returns a sender bound to app.
func NewDesktop(app fyne.App) *Desktop {
	return &Desktop{app: app}
}

func (desktop *Desktop) Name() string { return "desktop" }

func (desktop *Desktop) Send(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	notification := fyne.NewNotification(title, message)
	fyne.Do(func() {
		desktop.app.SendNotification(notification)
	})
	return nil
}
