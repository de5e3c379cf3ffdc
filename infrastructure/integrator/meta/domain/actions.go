package metadomain

import (
	"strings"

	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// AttributionWindows são as janelas de atribuição solicitadas explicitamente
// em toda consulta de insights. A extração de totais soma exatamente estas
// quando o "value" direto não vem preenchido.
var AttributionWindows = []string{"7d_click", "1d_click", "7d_view", "1d_view"}

// LeadActionTypes são os tipos de ação contabilizados como lead,
// independentemente da lógica de resultado oficial.
var LeadActionTypes = []string{
	"lead",
	"onsite_conversion.lead_grouped",
	"leadgen_grouped",
	"offsite_conversion.fb_pixel_lead",
	"onsite_conversion.lead",
}

// Tabela de rótulos exibidos no dashboard por tipo canônico.
var actionLabels = map[string]string{
	"lead":                             "Leads",
	"onsite_conversion.lead_grouped":   "Leads",
	"leadgen_grouped":                  "Leads",
	"offsite_conversion.fb_pixel_lead": "Leads",
	"onsite_conversion.messaging_conversation_started_7d": "Conversas iniciadas",
	"onsite_conversion.messaging_first_reply":             "Primeiras respostas",
	"purchase":                                "Compras",
	"offsite_conversion.fb_pixel_purchase":    "Compras",
	"omni_purchase":                           "Compras",
	"link_click":                              "Cliques no link",
	"landing_page_view":                       "Visualizações da página de destino",
	"post_engagement":                         "Engajamento com a publicação",
	"page_engagement":                         "Engajamento com a Página",
	"post_reaction":                           "Reações",
	"comment":                                 "Comentários",
	"onsite_conversion.post_save":             "Publicações salvas",
	"like":                                    "Curtidas na Página",
	"video_view":                              "Visualizações de vídeo",
	"thruplay_watched_actions":                "ThruPlays",
	"add_to_cart":                             "Adições ao carrinho",
	"offsite_conversion.fb_pixel_add_to_cart": "Adições ao carrinho",
	"initiate_checkout":                       "Finalizações de compra iniciadas",
	"app_install":                             "Instalações do app",
	"store_visit":                             "Visitas à loja",
}

// NormalizeActionType normaliza o tipo bruto para a chave canônica
// (minúsculas). Vazio devolve vazio e o chamador descarta a entrada.
func NormalizeActionType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsLeadType indica se o tipo canônico conta como lead.
func IsLeadType(actionType string) bool {
	for _, t := range LeadActionTypes {
		if t == actionType {
			return true
		}
	}
	return false
}

// ResultLabel devolve o rótulo de exibição de um tipo canônico. Tipos
// lead-like fora da tabela viram "Leads"; os demais ganham um rótulo
// derivado do próprio nome — fallback de exibição, não exaustivo.
func ResultLabel(actionType string) string {
	if label, ok := actionLabels[actionType]; ok {
		return label
	}

	if IsLeadType(actionType) {
		return "Leads"
	}

	return titleizeActionType(actionType)
}

func titleizeActionType(actionType string) string {
	replaced := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(actionType)

	words := strings.Fields(replaced)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

// ExtractEntryTotal extrai o melhor total numérico de uma entrada de ação.
// Tenta o valor direto; depois soma as janelas de atribuição nomeadas;
// por fim soma qualquer outro campo numérico da entrada.
func ExtractEntryTotal(entry ActionEntry) float64 {
	if direct := utils.ParseFloatSafe(entry.Value); direct > 0 {
		return direct
	}

	var windowTotal float64
	for _, window := range AttributionWindows {
		windowTotal += utils.ParseFloatSafe(entry.Fields[window])
	}

	if windowTotal > 0 {
		return windowTotal
	}

	var total float64
	for _, value := range entry.Fields {
		total += utils.ParseFloatSafe(value)
	}

	if total < 0 {
		return 0
	}

	return total
}
