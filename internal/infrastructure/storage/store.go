package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SchemaVersion é a versão do esquema gravado nos snapshots. Um
// snapshot com versão diferente é rejeitado na carga.
const SchemaVersion = 1

// Erros específicos
var (
	ErrVersionMismatch = errors.New("versão de esquema incompatível")
)

// envelope embrulha cada coleção persistida com a versão do esquema e
// o horário da gravação
type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	SavedAt       time.Time       `json:"saved_at"`
	Data          json.RawMessage `json:"data"`
}

// Store grava e recarrega coleções inteiras como snapshots JSON no
// disco local, uma coleção por arquivo. A premissa de escritor único é
// explícita: um único processo é dono do diretório de dados, e um
// mutex serializa as gravações dentro do processo.
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore cria um Store sobre o diretório informado, criando-o se
// necessário
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de dados: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load lê o snapshot da coleção informada para v. Retorna false quando
// a coleção ainda não foi gravada. Um snapshot malformado ou de versão
// incompatível é um erro fatal de carga, não uma condição recuperável.
func (s *Store) Load(collection string, v interface{}) (bool, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao ler snapshot de %s: %w", collection, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false, fmt.Errorf("snapshot de %s malformado: %w", collection, err)
	}
	if env.SchemaVersion != SchemaVersion {
		return false, fmt.Errorf("%w: snapshot de %s tem versão %d, esperada %d",
			ErrVersionMismatch, collection, env.SchemaVersion, SchemaVersion)
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return false, fmt.Errorf("erro ao decodificar snapshot de %s: %w", collection, err)
	}
	return true, nil
}

// Save grava o snapshot da coleção de forma atômica: o conteúdo é
// escrito em um arquivo temporário e renomeado por cima do definitivo,
// de modo que uma queda no meio da gravação nunca deixa um snapshot
// parcial.
func (s *Store) Save(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("erro ao codificar coleção %s: %w", collection, err)
	}

	env := envelope{
		SchemaVersion: SchemaVersion,
		SavedAt:       time.Now(),
		Data:          raw,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao codificar snapshot de %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo temporário para %s: %w", collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("erro ao gravar snapshot de %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao fechar snapshot de %s: %w", collection, err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("erro ao efetivar snapshot de %s: %w", collection, err)
	}
	return nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
