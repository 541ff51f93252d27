package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Feed prints all community posts, newest first.
func (a *App) Feed(ctx context.Context) error {

	posts, err := a.postService.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(posts) == 0 {
		printlnFn("No posts yet")
		return nil
	}

	for _, p := range posts {
		when := time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04")
		printlnFn(fmt.Sprintf("%s  %s  (%s)", when, p.UserName, p.Id))
		printlnFn(p.Content)
		if len(p.Tags) > 0 {
			printlnFn("tags: " + strings.Join(p.Tags, ", "))
		}
		printlnFn(fmt.Sprintf("%d likes, %d comments", p.Likes, len(p.Comments)))
		for _, c := range p.Comments {
			printlnFn(fmt.Sprintf("  %s: %s", c.UserName, c.Content))
		}
		printlnFn("")
	}
	return nil
}

func (a *App) AddPost(ctx context.Context) error {

	content, err := GetMultiline(a.reader, "Post content", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	tags, err := GetSimpleText(a.reader, "Tags (comma separated, optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	post, err := a.postService.Create(ctx, a.session.Current(), content, tags)
	if err != nil {
		log.Printf("Could not create post: %s", err.Error())
		return err
	}

	log.Printf("Posted %s", post.Id)
	return nil
}

func (a *App) LikePost(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Post id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.postService.Like(ctx, id); err != nil {
		log.Printf("Could not like post: %s", err.Error())
		return err
	}

	log.Println("Liked")
	return nil
}

func (a *App) CommentPost(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Post id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if _, err := a.postService.AddComment(ctx, id, a.session.Current(), content); err != nil {
		log.Printf("Could not add comment: %s", err.Error())
		return err
	}

	log.Println("Comment added")
	return nil
}
