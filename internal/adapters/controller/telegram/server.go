package telegram

import (
	"PocketFormsBot/internal/adapters/gateway/tgimages"
	"PocketFormsBot/internal/domain/repository"
	buildersvc "PocketFormsBot/internal/domain/service/builder"
	formssvc "PocketFormsBot/internal/domain/service/forms"
	sessionsvc "PocketFormsBot/internal/domain/service/session"
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"PocketFormsBot/internal/logz"
)

type Runner struct {
	bot *tgbot.Bot
}

type Controller struct {
	bot     *tgbot.Bot
	images  repository.ImageGateway
	builder *buildersvc.Service
	session *sessionsvc.Service
	forms   *formssvc.Service
}

func New(token string, builderSvc *buildersvc.Service, sessionSvc *sessionsvc.Service, formsSvc *formssvc.Service) (*Runner, error) {
	ctrl := &Controller{builder: builderSvc, session: sessionSvc, forms: formsSvc}

	b, err := tgbot.New(token, tgbot.WithDefaultHandler(ctrl.defaultHandler))
	if err != nil {
		return nil, err
	}
	ctrl.bot = b
	ctrl.images = tgimages.New(b)

	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, ctrl.start)
	b.RegisterHandler(tgbot.HandlerTypeMessageText, "/menu", tgbot.MatchTypeExact, ctrl.menu)

	return &Runner{bot: b}, nil
}

func (r *Runner) Start(ctx context.Context) {
	logz.Log.Info("telegram bot started")
	r.bot.Start(ctx)
}

func (c *Controller) defaultHandler(ctx context.Context, b *tgbot.Bot, upd *models.Update) {
	switch {
	case upd.CallbackQuery != nil:
		c.handleCallback(ctx, upd)
	case upd.Message != nil && len(upd.Message.Photo) > 0:
		c.handlePhoto(ctx, upd)
	case upd.Message != nil && upd.Message.Text != "":
		c.handleText(ctx, upd)
	}
}
