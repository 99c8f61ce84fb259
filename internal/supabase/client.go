package supabase

import (
	"fmt"
	"strings"

	"github.com/supabase-community/supabase-go"
)

// NewClient connects to a Supabase project with the service role key.
func NewClient(projectURL, serviceKey string) (*supabase.Client, error) {
	client, err := supabase.NewClient(strings.TrimSuffix(projectURL, "/"), serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}
