// Copyright 2026 Steunwijzer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package steunwijzer

import (
	"log/slog"

	"github.com/steunwijzer/steunwijzer/ai"
	"github.com/steunwijzer/steunwijzer/ai/openai"
	"github.com/steunwijzer/steunwijzer/assistant"
	"github.com/steunwijzer/steunwijzer/catalog"
	"github.com/steunwijzer/steunwijzer/ragindex"
	"github.com/steunwijzer/steunwijzer/ranking"
	"github.com/steunwijzer/steunwijzer/storage"
	"github.com/steunwijzer/steunwijzer/storage/badger"
)

// Service bundles the catalog, session store and AI provider behind one
// handle. It is the entry point for embedding the intake assistant in a
// host application or the CLI.
type Service struct {
	store    *catalog.Store
	backend  *badger.Backend
	sessions storage.SessionRepository
	provider ai.Provider
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
}

// WithAIConfig overrides the default AI configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI
// client construction. Mainly for tests.
func WithProvider(provider ai.Provider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// NewService loads the catalog from catalogPath and opens the session
// database at sessionDBPath.
func NewService(catalogPath, sessionDBPath string, opts ...ServiceOption) (*Service, error) {
	// Apply options
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	store, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	// Open session backend
	backend, err := badger.OpenBackend(sessionDBPath, sessionDBPath == "")
	if err != nil {
		return nil, err
	}

	sessions, err := badger.NewSessionRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			sessions.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		store:    store,
		backend:  backend,
		sessions: sessions,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (s *Service) Close() error {
	// Close AI provider first
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.sessions.Close(); err != nil {
		s.logger.Error("error closing session repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Catalog returns the loaded regulation catalog.
func (s *Service) Catalog() *catalog.Store {
	return s.store
}

// Sessions returns the session repository.
func (s *Service) Sessions() storage.SessionRepository {
	return s.sessions
}

// Provider returns the AI provider.
func (s *Service) Provider() ai.Provider {
	return s.provider
}

// NewIndexBuilder creates a builder for the knowledge-corpus embedding index.
func (s *Service) NewIndexBuilder(opts ...ragindex.BuilderOption) (*ragindex.Builder, error) {
	return ragindex.NewBuilder(s.provider.Embedder(), opts...)
}

// OpenRetriever loads the persisted embedding index from indexDir.
func (s *Service) OpenRetriever(indexDir string) (*ragindex.Retriever, error) {
	return ragindex.OpenRetriever(indexDir, s.provider.Embedder())
}

// NewAssistant wires up a conversational assistant over this service.
// Pass assistant.WithRetriever to ground answers in the knowledge corpus.
func (s *Service) NewAssistant(opts ...assistant.Option) (*assistant.Assistant, error) {
	oracle, err := ranking.NewOracle(s.provider.Completer())
	if err != nil {
		return nil, err
	}
	opts = append([]assistant.Option{assistant.WithSessions(s.sessions)}, opts...)
	return assistant.New(s.store, oracle, opts...)
}
