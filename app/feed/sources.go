package feed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResolveSources expands the positional source arguments into subscriptions.
// An argument naming an existing .yml/.yaml file is read as a subscription
// list; anything else is taken as a feed URL.
func ResolveSources(args []string) ([]Subscription, error) {
	var subs []Subscription
	for _, arg := range args {
		if isSubscriptionFile(arg) {
			loaded, err := LoadSubscriptions(arg)
			if err != nil {
				return nil, fmt.Errorf("error loading %s: %w", arg, err)
			}
			subs = append(subs, loaded...)
			continue
		}
		subs = append(subs, Subscription{URL: arg})
	}
	return subs, nil
}

// LoadSubscriptions reads a YAML subscription list file.
func LoadSubscriptions(path string) ([]Subscription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var list subscriptionList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, sub := range list.Feeds {
		if sub.URL == "" {
			return nil, fmt.Errorf("feed at index %d: url is required", i)
		}
	}

	return list.Feeds, nil
}

func isSubscriptionFile(arg string) bool {
	if !strings.HasSuffix(arg, ".yml") && !strings.HasSuffix(arg, ".yaml") {
		return false
	}
	_, err := os.Stat(arg)
	return err == nil
}
