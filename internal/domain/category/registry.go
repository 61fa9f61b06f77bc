package category

import (
	"context"
	"errors"
	"strings"
)

// Kind identifica qual dos registros de categorias está sendo manipulado
type Kind string

// Constantes para Kind
const (
	KindProduct  Kind = "PRODUCT"  // Categorias de produtos do catálogo
	KindEmployee Kind = "EMPLOYEE" // Categorias de funcionários
	KindAdmin    Kind = "ADMIN"    // Categorias de usuários administrativos
)

// Erros específicos
var (
	ErrBlankName   = errors.New("nome de categoria em branco")
	ErrUnknownKind = errors.New("tipo de registro de categorias desconhecido")
)

// Repository define a interface para os três registros independentes de
// categorias. Cada registro é um conjunto: inserir um nome já existente
// é um no-op e remover um nome não afeta as entidades já marcadas com
// ele.
type Repository interface {
	// Add insere um nome no registro indicado, se ainda não existir
	Add(ctx context.Context, kind Kind, name string) error

	// Remove exclui um nome do registro indicado, se existir
	Remove(ctx context.Context, kind Kind, name string) error

	// List retorna os nomes do registro indicado, na ordem de inserção
	List(ctx context.Context, kind Kind) ([]string, error)
}

// Normalize valida e normaliza um nome de categoria. Nomes em branco ou
// somente com espaços são rejeitados.
func Normalize(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrBlankName
	}
	return name, nil
}

// ValidKind verifica se o tipo de registro informado existe
func ValidKind(kind Kind) bool {
	switch kind {
	case KindProduct, KindEmployee, KindAdmin:
		return true
	}
	return false
}
