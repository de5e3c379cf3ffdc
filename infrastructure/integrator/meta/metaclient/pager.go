package metaclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// pageEnvelope é o envelope de paginação da API: {data, paging:{next}, error}.
type pageEnvelope struct {
	Data   []json.RawMessage        `json:"data"`
	Paging metadomain.Paging        `json:"paging"`
	Error  *metadomain.ErrorDetails `json:"error,omitempty"`
}

// pager percorre a paginação por cursor de uma edge, uma página por vez.
// Cada página é assinada de novo: URLs vindas em "paging.next" às vezes
// chegam sem os parâmetros de assinatura.
type pager struct {
	httpClient *http.Client
	creds      domain.Credentials
	next       string
}

func newPager(httpClient *http.Client, creds domain.Credentials, rawURL string) *pager {
	return &pager{
		httpClient: httpClient,
		creds:      creds,
		next:       rawURL,
	}
}

// Next devolve os dados da próxima página, ou done=true quando a paginação
// esgotou. Qualquer falha de transporte, corpo não decodificável, envelope
// de erro ou status fora de 2xx encerra a consulta com erro.
func (p *pager) Next() (data []json.RawMessage, done bool, err error) {
	if p.next == "" {
		return nil, true, nil
	}

	pageURL, err := signURL(p.next, p.creds)
	if err != nil {
		return nil, false, err
	}

	resp, err := p.httpClient.Get(pageURL)
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao ler a resposta")
	}

	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false, errors.Wrap(err, "erro ao decodificar a resposta da API")
	}

	if envelope.Error != nil {
		return nil, false, metadomain.NewAPIError(envelope.Error.Message, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false, metadomain.NewAPIError(
			fmt.Sprintf("requisição falhou com status %s", resp.Status),
			resp.StatusCode,
		)
	}

	p.next = envelope.Paging.Next

	return envelope.Data, false, nil
}

// fetchEdge percorre a edge paginada inteira e achata as páginas em uma
// única lista. Falha em qualquer página aborta a consulta toda — nunca
// devolve resultado parcial.
func fetchEdge[T any](c *MetaClient, creds domain.Credentials, endpoint string, params url.Values) ([]T, error) {
	pg := newPager(c.httpClient, creds, endpoint+"?"+params.Encode())

	items := make([]T, 0)

	for {
		page, done, err := pg.Next()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		for _, raw := range page {
			var item T
			if err := json.Unmarshal(raw, &item); err != nil {
				return nil, errors.Wrap(err, "erro ao decodificar item da página")
			}
			items = append(items, item)
		}
	}

	return items, nil
}

// signURL garante os dois parâmetros de assinatura na query da página,
// substituindo os que já existirem.
func signURL(rawURL string, creds domain.Credentials) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL da página")
	}

	query := parsed.Query()
	query.Set("access_token", creds.AccessToken)
	query.Set("appsecret_proof", AppSecretProof(creds.AccessToken, creds.AppSecret))
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// AppSecretProof calcula o HMAC-SHA256 do token com o segredo do app,
// exigido pela API em toda requisição assinada.
func AppSecretProof(accessToken, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))

	return hex.EncodeToString(mac.Sum(nil))
}
