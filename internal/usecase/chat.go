package usecase

import (
	"context"
	"net/url"
	"strings"

	"wallapop-bridge/internal/domain/model"
	"wallapop-bridge/internal/domain/repository"
)

// Selectors the browser agent needs on the chat page.
const (
	chatComposerSelector = "tsl-text-area textarea"
	chatSentSelector     = "tsl-chat-message:last-of-type"
)

// ChatUsecase owns everything around starting a conversation: resolving the
// internal item hash, building the declarative step list for the external
// browser agent, and the composite search-and-contact flow.
type ChatUsecase struct {
	search   *SearchUsecase
	resolver repository.HashResolver
	chatBase string
}

// NewChatUsecase creates a new ChatUsecase. chatBase is the conversation
// page URL without the itemId parameter.
func NewChatUsecase(search *SearchUsecase, resolver repository.HashResolver, chatBase string) *ChatUsecase {
	return &ChatUsecase{
		search:   search,
		resolver: resolver,
		chatBase: strings.TrimRight(chatBase, "?"),
	}
}

func (u *ChatUsecase) chatURL(hash string) string {
	return u.chatBase + "?itemId=" + url.QueryEscape(hash)
}

// Resolve derives the chat hash for an item URL or slug and returns it with
// the chat URL it opens.
func (u *ChatUsecase) Resolve(ctx context.Context, urlOrSlug string) (string, string, error) {
	if strings.TrimSpace(urlOrSlug) == "" {
		return "", "", &model.ValidationError{Msg: "item url or slug is required"}
	}
	hash, err := u.resolver.ResolveHash(ctx, urlOrSlug)
	if err != nil {
		return "", "", err
	}
	return hash, u.chatURL(hash), nil
}

// BuildInstructions produces the fixed five-step plan for delivering one
// message. Pure and deterministic; no browser is touched here. The order
// must not change: each step's note states the precondition it takes from
// the previous one.
func (u *ChatUsecase) BuildInstructions(hash, message string) model.ChatInstructions {
	chatURL := u.chatURL(hash)
	return model.ChatInstructions{
		Hash:    hash,
		ChatURL: chatURL,
		Message: message,
		Steps: []model.ChatStep{
			{Action: model.StepNavigate, URL: chatURL,
				Note: "open the conversation view for the item"},
			{Action: model.StepWaitFor, Selector: chatComposerSelector,
				Note: "the composer must be rendered before it can be focused"},
			{Action: model.StepClick, Selector: chatComposerSelector,
				Note: "focus the composer so the typed text lands in it"},
			{Action: model.StepFill, Selector: chatComposerSelector, Text: message, Submit: true,
				Note: "type the message into the focused composer and submit to send"},
			{Action: model.StepWaitFor, Selector: chatSentSelector,
				Note: "the sent message bubble confirms delivery"},
		},
	}
}

// RequestChat returns the instructions for an item, resolving the hash
// inline when the caller only knows the item URL or slug.
func (u *ChatUsecase) RequestChat(ctx context.Context, itemURL, hash, message string) (*model.ChatInstructions, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &model.ValidationError{Msg: "message is required"}
	}
	if hash == "" {
		if strings.TrimSpace(itemURL) == "" {
			return nil, &model.ValidationError{Msg: "either item_url or hash is required"}
		}
		resolved, err := u.resolver.ResolveHash(ctx, itemURL)
		if err != nil {
			return nil, err
		}
		hash = resolved
	}
	instructions := u.BuildInstructions(hash, message)
	return &instructions, nil
}

// SearchAndContact runs one search, drops reserved items and annotates each
// survivor with the two follow-up calls the caller must make. Hashes are not
// resolved here: each resolution is a full page fetch, so it is never
// batched silently across a result page.
func (u *ChatUsecase) SearchAndContact(ctx context.Context, query model.SearchQuery, message string) (*model.ContactSheet, error) {
	if strings.TrimSpace(message) == "" {
		return nil, &model.ValidationError{Msg: "message is required"}
	}

	page, err := u.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	sheet := &model.ContactSheet{
		Message:    message,
		Candidates: make([]model.ContactCandidate, 0, len(page.Items)),
		NextPage:   page.NextPage,
		Total:      page.Total,
	}
	for _, item := range page.Items {
		if item.Reserved {
			continue
		}
		sheet.Candidates = append(sheet.Candidates, model.ContactCandidate{
			Item: item,
			FollowUp: []model.FollowUpAction{
				{
					Endpoint: "POST /api/hash",
					Payload:  map[string]string{"item": item.URL},
					Note:     "resolve the chat hash for this item",
				},
				{
					Endpoint: "POST /api/chat",
					Payload:  map[string]string{"hash": "<hash from previous step>", "message": message},
					Note:     "request the browser steps with the resolved hash",
				},
			},
		})
	}
	return sheet, nil
}
