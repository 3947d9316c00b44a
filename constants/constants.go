package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_OWNER = "OWNER"
	ROLE_STAFF = "STAFF"
)

const (
	MISSING_LOGIN_INPUT       = "Usuário e senha são obrigatórios"
	INVALID_USERNAME          = "Usuário não encontrado"
	INVALID_PASSWORD          = "Senha incorreta"
	ACCOUNT_NOT_ACTIVE        = "Conta desativada"
	ERROR_INTERNAL_ERROR      = "Erro interno do servidor"
	ERROR_PARSE_DATA_TO_LOCALS = "Erro ao recuperar dados da requisição"
	DATA_INPUT_IS_NOT_NUMBER  = "Parâmetro deve ser numérico"
	CAN_NOT_HASH_PASSWORD     = "Não foi possível processar a senha"
	NOT_ADMIN                 = "Acesso restrito ao administrador"
	NOT_BUSINESS_ACCOUNT      = "Conta não vinculada a um estabelecimento"

	BUSINESS_NOT_FOUND      = "Estabelecimento não encontrado"
	BUSINESS_CLOSED         = "O estabelecimento está fechado no momento"
	ORDER_NOT_FOUND         = "Pedido não encontrado"
	ORDER_CREATE_FAILED     = "Não foi possível registrar o pedido. Tente novamente."
	NEIGHBORHOOD_NOT_SERVED = "Não entregamos nesse bairro"
	MP_NOT_CONFIGURED       = "Pagamento online não configurado para este estabelecimento"
)

// Rótulo sentinela usado em pedidos de retirada no local
const PICKUP_ADDRESS_LABEL = "Retirada no local"

// Rótulo padrão do primeiro endereço salvo de um cliente
const DEFAULT_ADDRESS_LABEL = "Casa"
