package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Limite de ids por requisição no endpoint ?ids= da API.
const creativeBatchSize = 50

const creativeFields = "id,name,thumbnail_url,object_story_spec,asset_feed_spec"

// GetCreativesMetadata busca os metadados dos criativos em lotes de até 50
// ids, repetindo até cobrir todos os solicitados, e mesclando tudo em um
// único mapa id -> criativo. Esse endpoint devolve um objeto, não o
// envelope de paginação.
func (c *MetaClient) GetCreativesMetadata(creds domain.Credentials, creativeIDs []string) (map[string]metadomain.CreativeMetadata, error) {
	merged := make(map[string]metadomain.CreativeMetadata, len(creativeIDs))

	for start := 0; start < len(creativeIDs); start += creativeBatchSize {
		end := min(start+creativeBatchSize, len(creativeIDs))

		batch, err := c.fetchCreativeBatch(creds, creativeIDs[start:end])
		if err != nil {
			return nil, err
		}

		for id, creative := range batch {
			merged[id] = creative
		}
	}

	return merged, nil
}

func (c *MetaClient) fetchCreativeBatch(creds domain.Credentials, ids []string) (map[string]metadomain.CreativeMetadata, error) {
	params := url.Values{}
	params.Add("ids", strings.Join(ids, ","))
	params.Add("fields", creativeFields)

	endpoint := fmt.Sprintf("%s/?%s", c.cfg.Meta.URL, params.Encode())

	signed, err := signURL(endpoint, creds)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(signed)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	// O corpo pode ser um envelope de erro em vez do mapa de criativos.
	var errEnvelope struct {
		Error *metadomain.ErrorDetails `json:"error"`
	}
	if err := json.Unmarshal(body, &errEnvelope); err == nil && errEnvelope.Error != nil {
		return nil, metadomain.NewAPIError(errEnvelope.Error.Message, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, metadomain.NewAPIError(
			fmt.Sprintf("requisição falhou com status %s", resp.Status),
			resp.StatusCode,
		)
	}

	var batch map[string]metadomain.CreativeMetadata
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar os metadados dos criativos")
	}

	return batch, nil
}
