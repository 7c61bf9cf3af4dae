package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Prendas-api/internal/application/ports"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Eres un consultor experto en retail de moda para una tienda de prendas en Perú.
Con los datos de inventario y movimientos que recibas, redacta un informe ejecutivo en español, de máximo 250 palabras, con:
1. Salud general del stock (modelos con stock crítico o en exceso).
2. Tendencias de venta, comparando Lima contra Provincia.
3. Una recomendación concreta de reposición o promoción.
4. Alertas si detectas stock negativo o comisiones pendientes acumuladas.
Escribe en texto plano, sin markdown, con tono directo y profesional.`
)

// AnthropicService adaptador que implementa LLMService usando la API REST de
// Anthropic (Claude). Usa net/http de la librería estándar; no requiere el
// SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

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

// GenerateInventoryReport arma el contexto con el catálogo y los movimientos
// recientes y pide el informe ejecutivo a Claude.
func (s *AnthropicService) GenerateInventoryReport(
	ctx context.Context,
	products []*entity.Product,
	movements []*entity.Movement,
) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildInventoryContext(products, movements)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	return strings.TrimSpace(anthResp.Content[0].Text), nil
}

// buildInventoryContext resume catálogo y movimientos en texto plano
// compacto. Las ventas llevan monto y ubicación para que el modelo pueda
// comparar Lima contra Provincia.
func buildInventoryContext(products []*entity.Product, movements []*entity.Movement) string {
	var b strings.Builder

	b.WriteString("INVENTARIO ACTUAL:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s, %s) | propietario %s | stock %d | precio S/ %s\n",
			p.Name, p.Color, p.Size, p.Owner, p.Stock, p.BasePrice.StringFixed(2))
	}

	b.WriteString("\nMOVIMIENTOS RECIENTES:\n")
	for _, m := range movements {
		if m.IsSale() && m.SalePrice != nil {
			amount := m.SalePrice.Mul(decimal.NewFromInt(m.Quantity))
			fmt.Fprintf(&b, "- %s | Venta x%d | S/ %s | %s | vendedor %s\n",
				m.Date.Format("2006-01-02"), m.Quantity, amount.StringFixed(2), m.Location, m.Seller)
			continue
		}
		fmt.Fprintf(&b, "- %s | %s x%d\n", m.Date.Format("2006-01-02"), m.Type, m.Quantity)
	}

	return b.String()
}
