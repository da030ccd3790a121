package telegram

import (
	"PocketFormsBot/internal/domain/schema"
	"context"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram/bot"
)

func shortText(s string, max int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func parsePart(data string, idx int) (string, bool) {
	parts := strings.Split(data, ":")
	if len(parts) <= idx || parts[idx] == "" {
		return "", false
	}
	return parts[idx], true
}

func parseIntPart(data string, idx int) (int, bool) {
	part, ok := parsePart(data, idx)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(part)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseKind(data string) (schema.QuestionKind, bool) {
	part, ok := parsePart(data, 2)
	if !ok {
		return "", false
	}
	switch schema.QuestionKind(part) {
	case schema.KindText, schema.KindCheckbox, schema.KindGrid:
		return schema.QuestionKind(part), true
	}
	return "", false
}

func (c *Controller) answerCallback(ctx context.Context, callbackID, text string) {
	_, _ = c.bot.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}
