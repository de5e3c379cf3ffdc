package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é a conta de anúncios cadastrada para um tenant. ExternalID é o
// identificador da conta na plataforma de anúncios (sem o prefixo "act_").
type AdAccount struct {
	ID         int             `json:"id"`
	ExternalID string          `json:"external_id"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname,omitempty"`
	Status     AdAccountStatus `json:"status"`
	TenantID   int             `json:"tenant_id"`
}

// DisplayName prefere o apelido definido pelo tenant quando existir.
func (a *AdAccount) DisplayName() string {
	if a.Nickname != nil && *a.Nickname != "" {
		return *a.Nickname
	}
	return a.Name
}

// Credentials é a credencial usada para assinar as requisições à API de
// relatórios: token de acesso mais o segredo usado no appsecret_proof.
type Credentials struct {
	AccessToken string
	AppSecret   string
}

// Integration é o registro de integração de um tenant com a plataforma de
// anúncios. O core só consome as credenciais; o CRUD é de outra camada.
type Integration struct {
	ID          int
	TenantID    int
	AccessToken string
	AppSecret   string
}

func (i *Integration) Credentials() Credentials {
	return Credentials{
		AccessToken: i.AccessToken,
		AppSecret:   i.AppSecret,
	}
}
