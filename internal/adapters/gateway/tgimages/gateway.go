package tgimages

import (
	"PocketFormsBot/internal/domain/repository"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Gateway is the image picker: users send photos to the chat, Telegram
// stores them, and the draft keeps only the server-side file path as its
// image reference. Bytes are downloaded once, at publish time.
type Gateway struct {
	bot  *tgbot.Bot
	http *http.Client
}

var _ repository.ImageGateway = (*Gateway)(nil)

func New(b *tgbot.Bot) *Gateway {
	return &Gateway{
		bot:  b,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Ref resolves a photo's file ID into its file path, e.g.
// "photos/file_42.jpg". The path doubles as the filename source for media
// type inference at upload time.
func (g *Gateway) Ref(ctx context.Context, fileID string) (string, error) {
	f, err := g.bot.GetFile(ctx, &tgbot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileID, err)
	}
	return f.FilePath, nil
}

func (g *Gateway) Fetch(ctx context.Context, ref string) ([]byte, error) {
	link := g.bot.FileDownloadLink(&models.File{FilePath: ref})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", ref, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: status %d", ref, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
