package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"arabyprompts/internal/models"
	"arabyprompts/internal/repositories"

	"github.com/google/uuid"
)

// Fallback texts returned in place of an AI answer.
const (
	FallbackMissingKey       = "خطأ: مفتاح API غير موجود. يرجى التأكد من الإعدادات."
	FallbackGenerationEmpty  = "عذراً، لم أتمكن من توليد الوصف."
	FallbackGenerationFailed = "حدث خطأ أثناء الاتصال بالذكاء الاصطناعي."
	FallbackAnalysisNoKey    = "API Key missing."
	FallbackAnalysisEmpty    = "Could not analyze."
	FallbackAnalysisFailed   = "Error during analysis."
	FallbackImageNoKey       = "خطأ: مفتاح API غير موجود."
	FallbackImageEmpty       = "لم يتم استخراج وصف."
	FallbackImageFailed      = "حدث خطأ أثناء تحليل الصورة."

	imageIdea       = "تحليل صورة"
	visionModelName = "Gemini Vision"
	maxHistory      = 50
)

// Completer is the hosted text/vision model.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteVision(ctx context.Context, image []byte, mimeType, instruction string) (string, error)
}

// GenerateRequest is the generator form.
type GenerateRequest struct {
	Topic          string `json:"topic" validate:"required,max=2000"`
	StyleID        string `json:"style_id"`
	AspectRatio    string `json:"aspect_ratio" validate:"omitempty,oneof=16:9 9:16 1:1 21:9"`
	TargetModel    string `json:"target_model" validate:"omitempty,oneof=Midjourney 'Stable Diffusion' 'DALL-E 3'"`
	NegativePrompt string `json:"negative_prompt" validate:"max=1000"`
}

// GenerateResult is what the generator page shows after a run.
type GenerateResult struct {
	Prompt            string              `json:"prompt"`
	ArabicTranslation string              `json:"arabic_translation"`
	History           *models.HistoryItem `json:"history,omitempty"`
}

// GeneratorService builds prompt templates and calls the AI model. AI failures
// never surface as errors: the caller receives a fallback text instead.
type GeneratorService struct {
	ai      Completer
	store   *repositories.EntityStore
	history []models.HistoryItem
	now     func() time.Time
	mu      sync.Mutex
}

// NewGeneratorService creates a GeneratorService. ai may be nil when no API key
// is configured, in which case every call returns its fallback text.
func NewGeneratorService(ai Completer, store *repositories.EntityStore) *GeneratorService {
	return &GeneratorService{ai: ai, store: store, now: time.Now}
}

// completion is how a model call ended.
type completion int

const (
	completed completion = iota
	completedEmpty
	unavailable // no client or a failed call
)

func (s *GeneratorService) complete(ctx context.Context, prompt, onMissing, onEmpty, onError string) (string, completion) {
	if s.ai == nil {
		return onMissing, unavailable
	}
	out, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		log.Printf("AI completion failed: %v", err)
		return onError, unavailable
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return onEmpty, completedEmpty
	}
	return out, completed
}

// TranslateAndRefine turns an Arabic idea into an English artistic description.
// On any failure the input is returned as is.
func (s *GeneratorService) TranslateAndRefine(ctx context.Context, text string) string {
	out, _ := s.complete(ctx, translateAndRefineInstruction(text), text, text, text)
	return out
}

// MagicEnhance expands a short idea into a richer prompt.
func (s *GeneratorService) MagicEnhance(ctx context.Context, input string) string {
	out, _ := s.complete(ctx, magicEnhanceInstruction(input), input, input, input)
	return out
}

// AnalyzePrompt runs the prompt doctor.
func (s *GeneratorService) AnalyzePrompt(ctx context.Context, prompt string) string {
	out, _ := s.complete(ctx, promptDoctorInstruction(prompt), FallbackAnalysisNoKey, FallbackAnalysisEmpty, FallbackAnalysisFailed)
	return out
}

// TranslateToArabic translates a generated prompt back for the reader.
func (s *GeneratorService) TranslateToArabic(ctx context.Context, text string) string {
	out, _ := s.complete(ctx, translateToArabicInstruction(text), text, text, text)
	return out
}

// Generate runs the full text pipeline: translate, apply the style suffix,
// build the final prompt for the target model, then translate it back.
func (s *GeneratorService) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if err := validateStruct(req); err != nil {
		return GenerateResult{}, err
	}
	if req.AspectRatio == "" {
		req.AspectRatio = "16:9"
	}
	if req.TargetModel == "" {
		req.TargetModel = TargetMidjourney
	}

	englishBase := s.TranslateAndRefine(ctx, req.Topic)
	instruction := videoPromptInstruction(englishBase, s.styleSuffix(req.StyleID), req.AspectRatio, req.TargetModel, req.NegativePrompt)

	prompt, status := s.complete(ctx, instruction, FallbackMissingKey, FallbackGenerationEmpty, FallbackGenerationFailed)
	if status == unavailable {
		return GenerateResult{Prompt: prompt}, nil
	}
	// An empty answer still carries the negative prompt syntax on its fallback text.
	prompt = appendNegativePrompt(prompt, req.AspectRatio, req.TargetModel, req.NegativePrompt)
	if status == completedEmpty {
		return GenerateResult{Prompt: prompt}, nil
	}

	item := s.record(summarizeIdea(req.Topic), prompt, req.TargetModel)
	return GenerateResult{
		Prompt:            prompt,
		ArabicTranslation: s.TranslateToArabic(ctx, prompt),
		History:           &item,
	}, nil
}

// ImageToPrompt reverse-engineers a prompt from an uploaded image.
func (s *GeneratorService) ImageToPrompt(ctx context.Context, image []byte, mimeType string) GenerateResult {
	if s.ai == nil {
		return GenerateResult{Prompt: FallbackImageNoKey}
	}
	out, err := s.ai.CompleteVision(ctx, image, mimeType, imageToPromptInstruction)
	if err != nil {
		log.Printf("Image to prompt failed: %v", err)
		return GenerateResult{Prompt: FallbackImageFailed}
	}
	if out = strings.TrimSpace(out); out == "" {
		return GenerateResult{Prompt: FallbackImageEmpty}
	}

	item := s.record(imageIdea, out, visionModelName)
	return GenerateResult{
		Prompt:            out,
		ArabicTranslation: s.TranslateToArabic(ctx, out),
		History:           &item,
	}
}

// History returns past runs, newest first.
func (s *GeneratorService) History() []models.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HistoryItem, len(s.history))
	copy(out, s.history)
	return out
}

func (s *GeneratorService) record(idea, prompt, model string) models.HistoryItem {
	item := models.HistoryItem{
		ID:              uuid.New().String(),
		Timestamp:       s.now().UTC(),
		OriginalIdea:    idea,
		GeneratedPrompt: prompt,
		ModelUsed:       model,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]models.HistoryItem{item}, s.history...)
	if len(s.history) > maxHistory {
		s.history = s.history[:maxHistory]
	}
	return item
}

func (s *GeneratorService) styleSuffix(styleID string) string {
	if s.store == nil || styleID == "" {
		return ""
	}
	for _, st := range s.store.Styles.List() {
		if st.ID == styleID {
			return st.Suffix
		}
	}
	return ""
}
