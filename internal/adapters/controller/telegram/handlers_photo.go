package telegram

import (
	"PocketFormsBot/internal/domain/schema"
	"context"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"PocketFormsBot/internal/logz"
)

// handlePhoto is the picker callback: a photo message resolves whichever
// image slot the builder is waiting on. Photos sent at any other point are
// ignored.
func (c *Controller) handlePhoto(ctx context.Context, upd *models.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	state, ok, err := c.builder.Get(ctx, userID)
	if err != nil {
		logz.Log.Error("load flow state", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if !ok || state.Mode != schema.FlowModeBuild {
		return
	}

	switch state.Step {
	case schema.FlowStepHeaderImage, schema.FlowStepQuestionImage, schema.FlowStepOptionImage:
	default:
		return
	}

	// Largest rendition is last.
	fileID := msg.Photo[len(msg.Photo)-1].FileID
	ref, err := c.images.Ref(ctx, fileID)
	if err != nil {
		logz.Log.Warn("resolve photo", zap.Int64("user_id", userID), zap.Error(err))
		c.send(ctx, chatID, "Could not read that photo. Please try again.", nil)
		return
	}

	switch state.Step {
	case schema.FlowStepHeaderImage:
		state.Draft.SetHeaderImage(ref)
		state.Step = schema.FlowStepBuilderMenu
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Header image attached 📎", nil)
		c.sendBuilderMenu(ctx, chatID, state.Draft)
	case schema.FlowStepQuestionImage:
		state.Draft.AttachQuestionImage(ref)
		state.Step = schema.FlowStepQuestionMenu
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Image attached 📎", nil)
		c.sendQuestionMenu(ctx, chatID, state.Draft)
	case schema.FlowStepOptionImage:
		if err := state.Draft.AttachOptionImage(state.OptionIndex, ref); err != nil {
			logz.Log.Warn("attach option image", zap.Int("index", state.OptionIndex), zap.Error(err))
			c.send(ctx, chatID, "That option no longer exists.", nil)
			return
		}
		state.Step = schema.FlowStepQuestionMenu
		_ = c.builder.Save(ctx, userID, state)
		c.send(ctx, chatID, "Image attached 📎", nil)
		c.sendQuestionMenu(ctx, chatID, state.Draft)
	}
}
