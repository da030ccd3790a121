package telegram

import (
	"PocketFormsBot/internal/domain/errorz"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"errors"
	"fmt"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"PocketFormsBot/internal/logz"
)

func (c *Controller) send(ctx context.Context, chatID int64, text string, markup *models.InlineKeyboardMarkup) {
	params := &tgbot.SendMessageParams{ChatID: chatID, Text: text}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := c.bot.SendMessage(ctx, params); err != nil {
		logz.Log.Warn("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func mainMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "📝 Build a form", CallbackData: "bld:new"}},
		{{Text: "📋 Published forms", CallbackData: "lst"}},
		{{Text: "👤 Account", CallbackData: "acc"}},
	}}
}

func kindKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{
			{Text: "Text", CallbackData: "bld:k:text"},
			{Text: "Checkbox", CallbackData: "bld:k:checkbox"},
			{Text: "Grid", CallbackData: "bld:k:grid"},
		},
	}}
}

func (c *Controller) sendBuilderMenu(ctx context.Context, chatID int64, draft schema.FormDraft) {
	title := draft.Title
	if title == "" {
		title = "(untitled)"
	}
	lines := []string{
		"Form: " + title,
		fmt.Sprintf("Questions: %d", len(draft.Questions)),
	}
	if draft.HeaderImageRef != "" {
		lines = append(lines, "Header image: 📎 attached")
	}

	rows := [][]models.InlineKeyboardButton{
		{{Text: "➕ Add question", CallbackData: "bld:q"}},
		{{Text: "🖼 Header image", CallbackData: "bld:himg"}},
	}
	if len(draft.Questions) > 0 {
		rows = append(rows,
			[]models.InlineKeyboardButton{{Text: "👁 Preview", CallbackData: "bld:prev"}},
			[]models.InlineKeyboardButton{{Text: "🚀 Publish", CallbackData: "bld:pub"}},
		)
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "❌ Discard", CallbackData: "bld:x"}})

	c.send(ctx, chatID, strings.Join(lines, "\n"), &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

// sendQuestionMenu renders the in-progress question with its edit actions.
// The Done button is the commit: it only succeeds once text and kind are set.
func (c *Controller) sendQuestionMenu(ctx context.Context, chatID int64, draft schema.FormDraft) {
	q := draft.Current
	if q == nil {
		c.sendBuilderMenu(ctx, chatID, draft)
		return
	}

	lines := []string{fmt.Sprintf("%s %s", kindMarker(q.Kind), q.Text)}
	if q.ImageRef != "" {
		lines = append(lines, "📎 image attached")
	}
	for i, opt := range q.Options {
		label := opt.Label
		if label == "" {
			label = "(empty)"
		}
		if opt.ImageRef != "" {
			label += " 📎"
		}
		lines = append(lines, fmt.Sprintf("Option %d: %s", i+1, label))
	}

	rows := [][]models.InlineKeyboardButton{
		{{Text: "🖼 Attach image", CallbackData: "bld:qimg"}},
	}
	if q.Kind == schema.KindCheckbox || q.Kind == schema.KindGrid {
		rows = append(rows, []models.InlineKeyboardButton{{Text: "➕ Add option", CallbackData: "bld:opt"}})
		for i := range q.Options {
			rows = append(rows, []models.InlineKeyboardButton{{
				Text:         fmt.Sprintf("🖼 Image for option %d", i+1),
				CallbackData: fmt.Sprintf("bld:oimg:%d", i),
			}})
		}
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "✅ Done", CallbackData: "bld:done"}})

	c.send(ctx, chatID, strings.Join(lines, "\n"), &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

func (c *Controller) sendDraftPreview(ctx context.Context, chatID int64, draft schema.FormDraft) {
	var b strings.Builder
	title := draft.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(title + "\n")
	for i, q := range draft.Questions {
		fmt.Fprintf(&b, "\n%d) %s %s", i+1, kindMarker(q.Kind), q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "\n   Option %d: %s", j+1, opt.Label)
		}
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(draft.Questions)+1)
	for i, q := range draft.Questions {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         fmt.Sprintf("🗑 %d) %s", i+1, shortText(q.Text, 30)),
			CallbackData: fmt.Sprintf("bld:rmq:%d", i),
		}})
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "bld:menu"}})

	c.send(ctx, chatID, b.String(), &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

func (c *Controller) sendFormsList(ctx context.Context, chatID, userID int64) {
	res, err := c.forms.List(ctx, userID)
	if err != nil {
		logz.Log.Error("list forms", zap.Error(err))
		c.send(ctx, chatID, "Could not load forms. Please try again!", nil)
		return
	}
	if len(res.Forms) == 0 {
		c.send(ctx, chatID, "No published forms yet.", mainMenu())
		return
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(res.Forms)+1)
	for _, f := range res.Forms {
		label := shortText(f.Title, 35)
		if _, filled := res.Filled[f.ID]; filled {
			label = "✅ " + label
		}
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         label,
			CallbackData: "lst:open:" + f.ID,
		}})
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "menu"}})

	c.send(ctx, chatID, "Published forms", &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

func (c *Controller) sendFormCard(ctx context.Context, chatID, userID int64, formID string) {
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

	var b strings.Builder
	b.WriteString(form.Title)
	for i, q := range form.Questions {
		fmt.Fprintf(&b, "\n%d) %s %s", i+1, kindMarker(q.Kind), q.Text)
	}

	rows := [][]models.InlineKeyboardButton{}
	if c.forms.HasFilled(ctx, userID, formID) {
		b.WriteString("\n\nYou have already filled this form.")
	} else {
		rows = append(rows, []models.InlineKeyboardButton{{Text: "✍️ Fill out", CallbackData: "fil:go:" + formID}})
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "⬅ Back", CallbackData: "lst"}})

	c.send(ctx, chatID, b.String(), &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

func (c *Controller) sendFillQuestion(ctx context.Context, chatID int64, state schema.FlowState) {
	q := state.Form.Questions[state.QuestionIndex]
	text := fmt.Sprintf("%d/%d %s", state.QuestionIndex+1, len(state.Form.Questions), q.Text)

	rows := [][]models.InlineKeyboardButton{}
	if q.Kind == schema.KindText {
		text += "\n\nType your answer."
	} else {
		for j, opt := range q.Options {
			rows = append(rows, []models.InlineKeyboardButton{{
				Text:         opt.Label,
				CallbackData: fmt.Sprintf("fil:o:%d", j),
			}})
		}
		if len(q.Options) == 0 {
			// A choice question without options renders nothing to choose.
			text += "\n\n(no options)"
		}
	}
	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "⏭ Skip", CallbackData: "fil:skip"},
		{Text: "❌ Cancel", CallbackData: "fil:x"},
	})

	c.send(ctx, chatID, text, &models.InlineKeyboardMarkup{InlineKeyboard: rows})
}

func (c *Controller) sendFillSummary(ctx context.Context, chatID int64, state schema.FlowState) {
	var b strings.Builder
	b.WriteString(state.Form.Title + "\n")
	for i, q := range state.Form.Questions {
		answer, ok := state.Answers[fmt.Sprint(i)]
		if !ok {
			answer = "—"
		}
		fmt.Fprintf(&b, "\n%d) %s\n   %s", i+1, q.Text, answer)
	}

	c.send(ctx, chatID, b.String(), &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "📤 Submit", CallbackData: "fil:send"}},
		{{Text: "❌ Cancel", CallbackData: "fil:x"}},
	}})
}

func (c *Controller) sendAccountMenu(ctx context.Context, chatID, userID int64) {
	if u, ok := c.session.Current(userID); ok {
		c.send(ctx, chatID, "Logged in as "+u.Email, c.accountKeyboard(userID))
		return
	}
	c.send(ctx, chatID, "You are not logged in.", c.accountKeyboard(userID))
}

func (c *Controller) accountKeyboard(userID int64) *models.InlineKeyboardMarkup {
	if _, ok := c.session.Current(userID); ok {
		return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "🚪 Logout", CallbackData: "acc:out"}},
			{{Text: "⬅ Back", CallbackData: "menu"}},
		}}
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{
		{{Text: "🔑 Login", CallbackData: "acc:in"}},
		{{Text: "🆕 Signup", CallbackData: "acc:up"}},
		{{Text: "⬅ Back", CallbackData: "menu"}},
	}}
}

func kindMarker(kind schema.QuestionKind) string {
	switch kind {
	case schema.KindCheckbox:
		return "☑️"
	case schema.KindGrid:
		return "🔲"
	default:
		return "✏️"
	}
}

// loginErrorMessage maps a failed login to the app's canned messages. Only
// the backend's "User not found" reason gets the specific hint; everything
// else, network failures included, reads as bad credentials.
func loginErrorMessage(err error) string {
	var ae *errorz.AuthError
	if errors.As(err, &ae) && ae.Reason == "User not found" {
		return "User does not exist. Please sign up."
	}
	return "Invalid login credentials. Please try again."
}

func signupErrorMessage(err error) string {
	var ae *errorz.AuthError
	if errors.As(err, &ae) && ae.Reason == "Email already in use" {
		return "Email is already in use. Please log in."
	}
	return "Something went wrong. Please try again."
}
