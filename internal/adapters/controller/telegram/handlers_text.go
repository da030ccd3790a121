package telegram

import (
	"PocketFormsBot/internal/domain/schema"
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"PocketFormsBot/internal/logz"
)

func (c *Controller) handleText(ctx context.Context, upd *models.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if strings.HasPrefix(text, "/") {
		if text == "/start" || text == "/menu" {
			_ = c.builder.Cancel(ctx, userID)
		}
		return
	}

	state, ok, err := c.builder.Get(ctx, userID)
	if err != nil {
		logz.Log.Error("load flow state", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if !ok {
		c.send(ctx, chatID, "Use /menu", nil)
		return
	}

	switch state.Mode {
	case schema.FlowModeBuild:
		c.buildText(ctx, chatID, userID, state, text)
	case schema.FlowModeFill:
		c.fillText(ctx, chatID, userID, state, text)
	case schema.FlowModeLogin, schema.FlowModeSignup:
		c.authText(ctx, chatID, userID, state, text)
	}
}

func (c *Controller) buildText(ctx context.Context, chatID, userID int64, state schema.FlowState, text string) {
	switch state.Step {
	case schema.FlowStepTitle:
		state.Draft.SetTitle(text)
		state.Step = schema.FlowStepBuilderMenu
		_ = c.builder.Save(ctx, userID, state)
		c.sendBuilderMenu(ctx, chatID, state.Draft)
	case schema.FlowStepQuestionText:
		state.Draft.SetQuestionText(text)
		state.Step = schema.FlowStepQuestionMenu
		_ = c.builder.Save(ctx, userID, state)
		c.sendQuestionMenu(ctx, chatID, state.Draft)
	case schema.FlowStepOptionLabel:
		if err := state.Draft.SetOptionLabel(state.OptionIndex, text); err != nil {
			logz.Log.Warn("set option label", zap.Int("index", state.OptionIndex), zap.Error(err))
			c.send(ctx, chatID, "That option no longer exists.", nil)
			return
		}
		state.Step = schema.FlowStepQuestionMenu
		_ = c.builder.Save(ctx, userID, state)
		c.sendQuestionMenu(ctx, chatID, state.Draft)
	case schema.FlowStepHeaderImage, schema.FlowStepQuestionImage, schema.FlowStepOptionImage:
		// Waiting on a photo; typed text leaves the draft untouched.
		c.send(ctx, chatID, "Send a photo, or use the buttons to go back.", nil)
	default:
		c.send(ctx, chatID, "Use the buttons under the message.", nil)
	}
}

func (c *Controller) fillText(ctx context.Context, chatID, userID int64, state schema.FlowState, text string) {
	if state.Step != schema.FlowStepAnswer || state.Form == nil {
		c.send(ctx, chatID, "Use the buttons under the message.", nil)
		return
	}
	idx := state.QuestionIndex
	if idx >= len(state.Form.Questions) {
		return
	}
	if state.Form.Questions[idx].Kind != schema.KindText {
		c.send(ctx, chatID, "Pick one of the options above.", nil)
		return
	}
	c.recordAnswer(ctx, chatID, userID, state, text)
}

// recordAnswer stores the answer for the current question, keyed by its
// position, and moves the fill flow forward.
func (c *Controller) recordAnswer(ctx context.Context, chatID, userID int64, state schema.FlowState, answer string) {
	if state.Answers == nil {
		state.Answers = map[string]string{}
	}
	state.Answers[strconv.Itoa(state.QuestionIndex)] = answer
	c.advanceFill(ctx, chatID, userID, state)
}

func (c *Controller) advanceFill(ctx context.Context, chatID, userID int64, state schema.FlowState) {
	state.QuestionIndex++
	if state.QuestionIndex >= len(state.Form.Questions) {
		state.Step = schema.FlowStepConfirm
		_ = c.builder.Save(ctx, userID, state)
		c.sendFillSummary(ctx, chatID, state)
		return
	}
	_ = c.builder.Save(ctx, userID, state)
	c.sendFillQuestion(ctx, chatID, state)
}

func (c *Controller) authText(ctx context.Context, chatID, userID int64, state schema.FlowState, text string) {
	switch state.Step {
	case schema.FlowStepEmail:
		state.Email = text
		state.Step = schema.FlowStepPassword
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Send your password.", nil)
	case schema.FlowStepPassword:
		if state.Mode == schema.FlowModeLogin {
			c.finishLogin(ctx, chatID, userID, state.Email, text)
		} else {
			c.finishSignup(ctx, chatID, userID, state.Email, text)
		}
	}
}

func (c *Controller) finishLogin(ctx context.Context, chatID, userID int64, email, password string) {
	_ = c.builder.Cancel(ctx, userID)
	if _, err := c.session.Login(ctx, userID, email, password); err != nil {
		logz.Log.Warn("login", zap.Int64("user_id", userID), zap.Error(err))
		c.send(ctx, chatID, loginErrorMessage(err), c.accountKeyboard(userID))
		return
	}
	c.send(ctx, chatID, "Login successful!", mainMenu())
}

func (c *Controller) finishSignup(ctx context.Context, chatID, userID int64, email, password string) {
	_ = c.builder.Cancel(ctx, userID)
	if err := c.session.Signup(ctx, email, password); err != nil {
		logz.Log.Warn("signup", zap.Int64("user_id", userID), zap.Error(err))
		c.send(ctx, chatID, signupErrorMessage(err), c.accountKeyboard(userID))
		return
	}
	c.send(ctx, chatID, "Signup successful! You can now log in.", c.accountKeyboard(userID))
}
