package telegram

import (
	"PocketFormsBot/internal/domain/errorz"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"PocketFormsBot/internal/logz"
)

func (c *Controller) handleCallback(ctx context.Context, upd *models.Update) {
	cb := upd.CallbackQuery
	if cb == nil {
		return
	}
	userID := cb.From.ID
	chatID := cb.Message.Message.Chat.ID
	data := cb.Data
	c.answerCallback(ctx, cb.ID, "")

	switch {
	case data == "menu":
		_ = c.builder.Cancel(ctx, userID)
		c.send(ctx, chatID, "Main menu", mainMenu())

	case data == "bld:new":
		_ = c.builder.StartBuild(ctx, userID)
		c.send(ctx, chatID, "Send the form title.", nil)
	case strings.HasPrefix(data, "bld:"):
		c.builderCallback(ctx, chatID, userID, data)

	case data == "lst":
		c.sendFormsList(ctx, chatID, userID)
	case strings.HasPrefix(data, "lst:open:"):
		formID, ok := parsePart(data, 2)
		if !ok {
			return
		}
		c.sendFormCard(ctx, chatID, userID, formID)

	case strings.HasPrefix(data, "fil:"):
		c.fillCallback(ctx, chatID, userID, data)

	case data == "acc":
		c.sendAccountMenu(ctx, chatID, userID)
	case data == "acc:in":
		_ = c.builder.StartLogin(ctx, userID)
		c.send(ctx, chatID, "Send your email.", nil)
	case data == "acc:up":
		_ = c.builder.StartSignup(ctx, userID)
		c.send(ctx, chatID, "Send your email.", nil)
	case data == "acc:out":
		c.session.Logout(userID)
		c.send(ctx, chatID, "Logged out.", mainMenu())
	}
}

func (c *Controller) builderCallback(ctx context.Context, chatID, userID int64, data string) {
	state, ok, err := c.builder.Get(ctx, userID)
	if err != nil || !ok || state.Mode != schema.FlowModeBuild {
		c.send(ctx, chatID, "The draft is gone, start again from the menu.", mainMenu())
		return
	}

	switch {
	case data == "bld:menu":
		state.Step = schema.FlowStepBuilderMenu
		_ = c.builder.Save(ctx, userID, state)
		c.sendBuilderMenu(ctx, chatID, state.Draft)

	case data == "bld:q":
		state.Step = schema.FlowStepKind
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Select question type:", kindKeyboard())
	case strings.HasPrefix(data, "bld:k:"):
		kind, ok := parseKind(data)
		if !ok {
			return
		}
		state.Draft.BeginQuestion(kind)
		state.Step = schema.FlowStepQuestionText
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Send the question text.", nil)

	case data == "bld:himg":
		state.Step = schema.FlowStepHeaderImage
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Send a photo for the form header.", nil)
	case data == "bld:qimg":
		state.Step = schema.FlowStepQuestionImage
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Send a photo for this question.", nil)

	case data == "bld:opt":
		state.Draft.AddOption()
		if state.Draft.Current == nil || len(state.Draft.Current.Options) == 0 {
			return
		}
		state.OptionIndex = len(state.Draft.Current.Options) - 1
		state.Step = schema.FlowStepOptionLabel
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Send the option label.", nil)
	case strings.HasPrefix(data, "bld:oimg:"):
		idx, ok := parseIntPart(data, 2)
		if !ok {
			return
		}
		state.OptionIndex = idx
		state.Step = schema.FlowStepOptionImage
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Send a photo for this option.", nil)

	case data == "bld:done":
		if !state.Draft.CommitQuestion() {
			c.send(ctx, chatID, "A question needs text and a type before it can be added.", nil)
			return
		}
		state.Step = schema.FlowStepBuilderMenu
		_ = c.builder.Save(ctx, userID, state)
		c.sendBuilderMenu(ctx, chatID, state.Draft)

	case data == "bld:prev":
		c.sendDraftPreview(ctx, chatID, state.Draft)
	case strings.HasPrefix(data, "bld:rmq:"):
		idx, ok := parseIntPart(data, 2)
		if !ok {
			return
		}
		if err := state.Draft.RemoveQuestion(idx); err != nil {
			logz.Log.Warn("remove question", zap.Int("index", idx), zap.Error(err))
			return
		}
		_ = c.builder.Save(ctx, userID, state)
		c.sendDraftPreview(ctx, chatID, state.Draft)

	case data == "bld:pub":
		c.publish(ctx, chatID, userID, state)
	case data == "bld:x":
		_ = c.builder.Cancel(ctx, userID)
		c.send(ctx, chatID, "Draft discarded.", mainMenu())
	}
}

func (c *Controller) publish(ctx context.Context, chatID, userID int64, state schema.FlowState) {
	if err := c.forms.Publish(ctx, state.Draft, c.images); err != nil {
		logz.Log.Error("publish form", zap.Int64("user_id", userID), zap.Error(err))
		c.send(ctx, chatID, "Error saving form. Please try again!", nil)
		return
	}
	_ = c.builder.Cancel(ctx, userID)
	c.send(ctx, chatID, "Form saved successfully!", mainMenu())
}

func (c *Controller) fillCallback(ctx context.Context, chatID, userID int64, data string) {
	if strings.HasPrefix(data, "fil:go:") {
		formID, ok := parsePart(data, 2)
		if !ok {
			return
		}
		c.startFill(ctx, chatID, userID, formID)
		return
	}

	state, ok, err := c.builder.Get(ctx, userID)
	if err != nil || !ok || state.Mode != schema.FlowModeFill || state.Form == nil {
		c.send(ctx, chatID, "This form session has expired. Open the form again.", mainMenu())
		return
	}

	switch {
	case strings.HasPrefix(data, "fil:o:"):
		idx, ok := parseIntPart(data, 2)
		if !ok || state.Step != schema.FlowStepAnswer {
			return
		}
		q := state.Form.Questions[state.QuestionIndex]
		if idx < 0 || idx >= len(q.Options) {
			return
		}
		c.recordAnswer(ctx, chatID, userID, state, q.Options[idx].Label)
	case data == "fil:skip":
		if state.Step != schema.FlowStepAnswer {
			return
		}
		c.advanceFill(ctx, chatID, userID, state)
	case data == "fil:send":
		if state.Step != schema.FlowStepConfirm {
			return
		}
		c.submitFill(ctx, chatID, userID, state)
	case data == "fil:x":
		_ = c.builder.Cancel(ctx, userID)
		c.send(ctx, chatID, "Response discarded.", mainMenu())
	}
}

func (c *Controller) startFill(ctx context.Context, chatID, userID int64, formID string) {
	form, err := c.forms.Get(ctx, formID)
	if err != nil {
		if errors.Is(err, errorz.ErrNotFound) {
			c.send(ctx, chatID, "This form is no longer available.", mainMenu())
			return
		}
		logz.Log.Error("fetch form", zap.String("form_id", formID), zap.Error(err))
		c.send(ctx, chatID, "Could not load the form. Please try again!", nil)
		return
	}
	if len(form.Questions) == 0 {
		c.send(ctx, chatID, "This form has no questions.", mainMenu())
		return
	}
	if err := c.builder.StartFill(ctx, userID, form); err != nil {
		logz.Log.Error("start fill", zap.String("form_id", formID), zap.Error(err))
		return
	}
	state, ok, err := c.builder.Get(ctx, userID)
	if err != nil || !ok {
		return
	}
	c.sendFillQuestion(ctx, chatID, state)
}

func (c *Controller) submitFill(ctx context.Context, chatID, userID int64, state schema.FlowState) {
	if err := c.forms.Submit(ctx, userID, state.FormID, state.Answers); err != nil {
		logz.Log.Error("submit response", zap.String("form_id", state.FormID), zap.Error(err))
		c.send(ctx, chatID, "Error saving response. Please try again!", nil)
		return
	}
	_ = c.builder.Cancel(ctx, userID)
	c.send(ctx, chatID, "Response submitted ✅", mainMenu())
}
