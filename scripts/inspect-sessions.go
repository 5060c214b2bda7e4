package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// sessionKeyPattern matches the search session counters
const sessionKeyPattern = "search_session:*"

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning search session counters...")

	iter := client.Scan(ctx, 0, sessionKeyPattern, 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		value, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		// A counter that is not an integer breaks INCR for the session
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			fmt.Printf("✗ Non-integer generation in %s: %q\n", key, value)
			badKeys = append(badKeys, key)
			continue
		}

		// Counters without expiry are never cleaned up
		ttl, err := client.TTL(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading TTL of %s: %v\n", key, err)
			continue
		}
		if ttl < 0 {
			fmt.Printf("✗ No expiry on %s (generation %s)\n", key, value)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad entries\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("All session counters look healthy!")
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Deleting a counter only resets its session; in-flight searches are
	// then never reported as superseded
	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range badKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
