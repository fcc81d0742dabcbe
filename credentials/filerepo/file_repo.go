package filerepo

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/credentials"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	fileVersion = 1
	saltLength  = 16

	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
)

var ErrWrongPassphrase = errors.New("credentials file cannot be decrypted with the configured passphrase")

var _ credentials.Repo = (*FileRepo)(nil)

// envelope is the on-disk layout. Values is used for plaintext files;
// Salt/Nonce/Ciphertext hold the sealed JSON of the values map otherwise.
type envelope struct {
	Version    int               `json:"version"`
	Values     map[string]string `json:"values,omitempty"`
	Salt       []byte            `json:"salt,omitempty"`
	Nonce      []byte            `json:"nonce,omitempty"`
	Ciphertext []byte            `json:"ciphertext,omitempty"`
}

// FileRepo keeps credentials in a single JSON file so they survive restarts.
// Every read goes back to disk; writes replace the file atomically.
type FileRepo struct {
	path       string
	passphrase []byte

	mu   sync.Mutex
	salt []byte
	key  []byte
}

// New returns a repo backed by path. An empty passphrase stores values in
// plaintext; otherwise the values are sealed with XChaCha20-Poly1305 under an
// Argon2id key.
func New(path, passphrase string) (*FileRepo, error) {
	if path == "" {
		return nil, errors.New("[filerepo New] path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("[filerepo New] create directory: %w", err)
	}
	r := &FileRepo{path: path}
	if passphrase != "" {
		r.passphrase = []byte(passphrase)
	}
	return r, nil
}

func (r *FileRepo) Path() string {
	return r.path
}

func (r *FileRepo) Get(key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", credentials.ErrNotFound
	}
	return value, nil
}

func (r *FileRepo) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return err
	}
	values[key] = value
	return r.save(values)
}

func (r *FileRepo) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return r.save(values)
}

// Clear removes the file; a missing file already means "no keys".
func (r *FileRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("[filerepo Clear] %w", err)
	}
	r.salt, r.key = nil, nil
	return nil
}

func (r *FileRepo) load() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[filerepo load] read: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("[filerepo load] decode %s: %w", r.path, err)
	}
	if env.Version != fileVersion {
		return nil, fmt.Errorf("[filerepo load] unsupported file version %d", env.Version)
	}

	if env.Ciphertext == nil {
		if r.passphrase != nil && len(env.Values) > 0 {
			return nil, fmt.Errorf("[filerepo load] %s is not encrypted but a passphrase is configured", r.path)
		}
		if env.Values == nil {
			env.Values = map[string]string{}
		}
		return env.Values, nil
	}

	if r.passphrase == nil {
		return nil, fmt.Errorf("[filerepo load] %s is encrypted but no passphrase is configured", r.path)
	}
	aead, err := r.cipher(env.Salt)
	if err != nil {
		return nil, err
	}
	plain, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	values := map[string]string{}
	if err := json.Unmarshal(plain, &values); err != nil {
		return nil, fmt.Errorf("[filerepo load] decode sealed values: %w", err)
	}
	return values, nil
}

func (r *FileRepo) save(values map[string]string) error {
	env := envelope{Version: fileVersion}

	if r.passphrase == nil {
		env.Values = values
	} else {
		if r.salt == nil {
			salt := make([]byte, saltLength)
			if _, err := rand.Read(salt); err != nil {
				return fmt.Errorf("[filerepo save] salt: %w", err)
			}
			r.salt = salt
		}
		aead, err := r.cipher(r.salt)
		if err != nil {
			return err
		}
		plain, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("[filerepo save] encode values: %w", err)
		}
		nonce := make([]byte, aead.NonceSize())
		if _, err := rand.Read(nonce); err != nil {
			return fmt.Errorf("[filerepo save] nonce: %w", err)
		}
		env.Salt = r.salt
		env.Nonce = nonce
		env.Ciphertext = aead.Seal(nil, nonce, plain, nil)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("[filerepo save] encode: %w", err)
	}
	return writeAtomic(r.path, data)
}

// cipher derives (or reuses) the key for salt.
func (r *FileRepo) cipher(salt []byte) (cipher.AEAD, error) {
	if r.key == nil || string(r.salt) != string(salt) {
		r.key = argon2.IDKey(r.passphrase, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
		r.salt = append([]byte(nil), salt...)
	}
	aead, err := chacha20poly1305.NewX(r.key)
	if err != nil {
		return nil, fmt.Errorf("[filerepo cipher] %w", err)
	}
	return aead, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".credentials-*")
	if err != nil {
		return fmt.Errorf("[filerepo writeAtomic] create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("[filerepo writeAtomic] chmod: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("[filerepo writeAtomic] write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("[filerepo writeAtomic] sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("[filerepo writeAtomic] close: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("[filerepo writeAtomic] rename: %w", err)
	}
	return nil
}
