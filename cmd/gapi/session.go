package main

import (
	"context"
	"fmt"

	"google.golang.org/api/googleapi"

	"gapi/internal/auth"
	"gapi/internal/canonical"
	"gapi/internal/catalog"
	"gapi/internal/discovery"
	"gapi/internal/ratelimit"
	"gapi/internal/runtime"
)

// session resolves APIs lazily for dynamic calls and reuses the resolved
// service, executor and call options across calls to the same API.
type session struct {
	a        *app
	fetcher  *discovery.Fetcher
	release  func()
	version  string
	resolved map[string]*liveAPI
}

type liveAPI struct {
	svc      *canonical.Service
	exec     *runtime.Executor
	callOpts []googleapi.CallOption
}

func (a *app) newSession(version string) *session {
	fetcher, release := a.newFetcher()
	return &session{
		a:        a,
		fetcher:  fetcher,
		release:  release,
		version:  version,
		resolved: map[string]*liveAPI{},
	}
}

func (s *session) Close() { s.release() }

// api resolves name. Bound APIs use their bound version; any other API
// needs an explicit version.
func (s *session) api(ctx context.Context, name, version string) (*liveAPI, error) {
	if version == "" {
		version = s.version
	}
	var scopes []string
	if e, ok := catalog.Lookup(name); ok {
		if version == "" {
			version = e.Version
		}
		scopes = e.Scopes
	}
	if version == "" {
		return nil, fmt.Errorf("api %q is not bound; pass --version", name)
	}
	key := name + ":" + version
	if live, ok := s.resolved[key]; ok {
		return live, nil
	}

	raw, err := s.fetcher.Fetch(ctx, s.a.discoveryURL(name, version))
	if err != nil {
		return nil, err
	}
	doc, err := discovery.Parse(raw)
	if err != nil {
		return nil, err
	}
	apiCfg := s.a.cfg.API(name)
	endpoint := ""
	if apiCfg != nil {
		endpoint = apiCfg.Endpoint
	}
	svc, err := doc.Canonical(name, endpoint)
	if err != nil {
		return nil, err
	}
	if len(scopes) == 0 {
		scopes = doc.Scopes()
	}
	client, err := auth.NewHTTPClient(ctx, apiCfg, scopes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	live := &liveAPI{
		svc:      svc,
		exec:     runtime.NewExecutor(client, s.a.logger, s.a.redactor, s.a.cfg.Timeout(apiCfg)),
		callOpts: auth.CallOptions(apiCfg),
	}
	if apiCfg != nil && apiCfg.RateLimit != nil {
		rl := apiCfg.RateLimit
		live.exec.SetLimiter(ratelimit.New(ratelimit.Limits{PerMinute: rl.PerMinute, PerHour: rl.PerHour, PerDay: rl.PerDay}))
	}
	s.resolved[key] = live
	return live, nil
}

// call runs method of api with args.
func (s *session) call(ctx context.Context, api, version, method string, args map[string]any) (*runtime.Result, error) {
	live, err := s.api(ctx, api, version)
	if err != nil {
		return nil, err
	}
	op := live.svc.Find(method)
	if op == nil {
		return nil, fmt.Errorf("%s: unknown method %q", api, method)
	}
	return live.exec.Execute(ctx, live.svc, op, args, live.callOpts...)
}
