// Package ai contient l'adaptateur LLM pour l'estimation de coûts de travaux.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/madenm/BTPAPPMuss-sub002/internal/application/dto"
	"github.com/madenm/BTPAPPMuss-sub002/internal/application/ports"
)

// Vérification à la compilation qu'AnthropicService implémente LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Tu es un économiste de la construction expérimenté du BTP en France.
Étant donné la description libre d'un projet de travaux (et sa surface si fournie),
renvoie UNIQUEMENT un objet JSON valide (sans markdown, sans bloc de code` + " ```json" + `) avec cette structure exacte :
{
  "cout_min": <nombre : estimation basse en euros HT>,
  "cout_max": <nombre : estimation haute en euros HT>,
  "confidence_score": <nombre décimal entre 0.0 et 1.0>,
  "reasoning": "<justification concise en français, 200 caractères maximum>",
  "postes_suggeres": ["<intitulé de poste de travaux>", ...]
}

Règles :
- cout_min et cout_max : fourchette réaliste hors taxes, prix du marché français.
- confidence_score : 0.9-1.0 = forte certitude, 0.7-0.89 = probable, <0.7 = estimation grossière.
- postes_suggeres : 3 à 8 postes, intitulés courts tels qu'ils figureraient sur un devis.
- Aucun texte hors du JSON. Uniquement l'objet JSON.`
)

// AnthropicService adaptateur implémentant LLMService via l'API REST Anthropic (Claude).
// Utilise net/http de la librairie standard ; le SDK officiel n'est pas requis.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construit l'adaptateur.
// model vaut typiquement "claude-3-5-haiku-20241022".
// Si apiKey est vide les appels renvoient une erreur descriptive plutôt qu'un panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout réseau de 25 s ; le cas d'usage impose en plus un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Structures internes du protocole Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// llmEstimationPayload est le JSON attendu du modèle.
type llmEstimationPayload struct {
	CoutMin         float64  `json:"cout_min"`
	CoutMax         float64  `json:"cout_max"`
	ConfidenceScore float64  `json:"confidence_score"`
	Reasoning       string   `json:"reasoning"`
	PostesSuggeres  []string `json:"postes_suggeres"`
}

// jsonBlockRe extrait le premier objet JSON du texte même si Claude l'enrobe de markdown.
// Capture du premier '{' jusqu'au dernier '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implémentation du port ────────────────────────────────────────────────────

// EstimateProjectCost envoie la description du projet à Claude et renvoie la
// fourchette de coûts suggérée.
func (s *AnthropicService) EstimateProjectCost(
	ctx context.Context,
	description string,
	surfaceM2 string,
) (*dto.AIEstimationDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY non configuré")
	}

	userContent := fmt.Sprintf("Projet : %s", description)
	if surfaceM2 != "" {
		userContent += fmt.Sprintf("\nSurface : %s m²", surfaceM2)
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: sérialiser la requête: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: créer la requête HTTP: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout ou annulation: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: appel HTTP échoué: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: lire la réponse: %w", err)
	}

	// Erreurs HTTP de l'API Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: erreur Anthropic (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("AI: désérialiser la réponse Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("AI: Claude a renvoyé une réponse vide")
	}

	rawText := anthResp.Content[0].Text

	// Parseur défensif : n'extraire que le bloc JSON même si le modèle ajoute du texte.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: aucun JSON valide dans la réponse du modèle (réponse: %s)", rawText)
	}

	var estimation llmEstimationPayload
	if err := json.Unmarshal([]byte(cleanJSON), &estimation); err != nil {
		return nil, fmt.Errorf("AI: parser le JSON d'estimation: %w (JSON extrait: %s)", err, cleanJSON)
	}

	// Cohérence de la fourchette : min ≤ max, jamais négatif.
	coutMin, coutMax := estimation.CoutMin, estimation.CoutMax
	if coutMin < 0 {
		coutMin = 0
	}
	if coutMax < coutMin {
		coutMax = coutMin
	}

	confidence := estimation.ConfidenceScore
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return &dto.AIEstimationDTO{
		CoutMin:         decimal.NewFromFloat(coutMin),
		CoutMax:         decimal.NewFromFloat(coutMax),
		ConfidenceScore: confidence,
		Reasoning:       estimation.Reasoning,
		PostesSuggeres:  estimation.PostesSuggeres,
	}, nil
}

// extractJSON extrait le premier objet JSON bien formé d'un texte libre.
// Stratégie en deux temps :
//  1. Retirer les blocs de code markdown (```json … ``` ou ``` … ```).
//  2. Regex pour capturer le premier bloc { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		// Retirer la ligne d'ouverture (```json ou ```)
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		// Retirer la fermeture ```
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	// Si le texte restant commence déjà par '{', l'utiliser directement
	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
