package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persiste cada coleção como um arquivo JSON em dataDir
// (produtos.json, pedidos.json, …), o mesmo layout dos arquivos legados.
// A gravação usa arquivo temporário + rename para que uma queda no meio da
// escrita nunca deixe uma coleção truncada.
type FileStore struct {
	dataDir string
}

// NewFileStore cria o diretório de dados se necessário.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de dados %s: %w", dataDir, err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) path(colecao string) string {
	return filepath.Join(s.dataDir, colecao+".json")
}

// Load lê a coleção inteira em out. Coleção inexistente não é erro:
// out fica intocado (o chamador parte de uma slice vazia).
func (s *FileStore) Load(colecao string, out interface{}) error {
	raw, err := os.ReadFile(s.path(colecao))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("ler coleção %s: %w", colecao, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar coleção %s: %w", colecao, err)
	}
	return nil
}

// Save substitui a coleção inteira de forma atômica.
func (s *FileStore) Save(colecao string, registros interface{}) error {
	raw, err := json.MarshalIndent(registros, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar coleção %s: %w", colecao, err)
	}

	tmp, err := os.CreateTemp(s.dataDir, colecao+"-*.tmp")
	if err != nil {
		return fmt.Errorf("gravar coleção %s: %w", colecao, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("gravar coleção %s: %w", colecao, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("gravar coleção %s: %w", colecao, err)
	}
	if err := os.Rename(tmpName, s.path(colecao)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("gravar coleção %s: %w", colecao, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
