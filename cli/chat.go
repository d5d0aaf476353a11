package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resumecoach/backend/chat"
	"github.com/resumecoach/backend/rag"
)

var (
	chatDir  string
	chatFree bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat about a folder of resumes",
	Long: `Indexes every PDF and TXT file in a folder, then answers questions
from the most relevant passages. Type 'exit' to quit.
With --free the model answers without documents and remembers the conversation.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatDir, "dir", "d", ".", "folder with .pdf and .txt files")
	chatCmd.Flags().BoolVar(&chatFree, "free", false, "chat without documents, keeping history")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	ctx := context.Background()
	app, err := appFactory(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if chatFree {
		return freeChatLoop(ctx, cmd.InOrStdin(), cmd, app.Chat)
	}

	cmd.Printf("Processing documents in %s...\n", chatDir)
	files, err := app.Docs.IndexDir(ctx, chatDir)
	if err != nil {
		return err
	}
	cmd.Printf("Indexed %d files (%d chunks). Type 'exit' to quit.\n", files, app.Docs.Len())

	return docsChatLoop(ctx, cmd.InOrStdin(), cmd, app.Docs)
}

// replies answers one line of user input
type replies func(ctx context.Context, question string) (string, error)

func docsChatLoop(ctx context.Context, in io.Reader, cmd *cobra.Command, docs *rag.Service) error {
	return repl(ctx, in, cmd, func(ctx context.Context, q string) (string, error) {
		answer, err := docs.Ask(ctx, q)
		if err != nil {
			return "", err
		}
		return answer.Text, nil
	})
}

func freeChatLoop(ctx context.Context, in io.Reader, cmd *cobra.Command, store *chat.Store) error {
	session := store.Create("")
	defer store.Delete(session.ID)

	return repl(ctx, in, cmd, func(ctx context.Context, q string) (string, error) {
		return store.Send(ctx, session.ID, q)
	})
}

// repl reads questions until 'exit' or end of input. A failed answer is
// printed and the loop continues.
// maxQuestionBytes bounds a single REPL line
const maxQuestionBytes = 1 << 20

func repl(ctx context.Context, in io.Reader, cmd *cobra.Command, answer replies) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxQuestionBytes)
	for {
		cmd.Print("You: ")
		if !scanner.Scan() {
			cmd.Println()
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, "exit") {
			return nil
		}

		reply, err := answer(ctx, question)
		if err != nil {
			cmd.Printf("Error getting response: %v\n", err)
			continue
		}
		cmd.Printf("Bot: %s\n", reply)
	}
}
