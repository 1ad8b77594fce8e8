package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/session"
)

const sessionPattern = "dungeon_session:*"

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
	fmt.Println("Scanning for corrupted game sessions...")

	iter := client.Scan(ctx, 0, sessionPattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var sess session.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if problem := check(&sess); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// check reports the first broken invariant of a stored session
func check(sess *session.Session) string {
	if _, ok := sess.State.World.Room(sess.State.CurrentRoomID); !ok {
		return "current room is not in the world"
	}
	stats := sess.Player.Character.Stats
	if stats.MaxHealth < 1 {
		return fmt.Sprintf("max health is %d", stats.MaxHealth)
	}
	if stats.Health < 0 || stats.Health > stats.MaxHealth {
		return fmt.Sprintf("health %d is outside [0, %d]", stats.Health, stats.MaxHealth)
	}
	if n := len(sess.Player.Character.Inventory.ReadiedWeapons()); n > entities.MaxReadiedWeapons {
		return fmt.Sprintf("%d weapons at the ready", n)
	}
	return ""
}
