package api

import (
	"math/rand"
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

// initializeHandlers creates all services and handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	postService := services.NewPostService(database.BlogPostRepo(), database.TagRepo())
	tagService := services.NewTagService(database.TagRepo())
	names := services.NewNameGenerator(rand.NewSource(time.Now().UnixNano()))
	commentService := services.NewCommentService(database.CommentRepo(), database.BlogPostRepo(), names)
	projectService := services.NewProjectService(database.ProjectRepo())
	galleryService := services.NewGalleryService(database.GalleryImageRepo())
	userService := services.NewUserService(database.UserRepo())

	return &routeHandlers{
		blogPostHandler: newBlogPostHandler(postService),
		commentHandler:  newCommentHandler(commentService),
		tagHandler:      newTagHandler(tagService),
		projectHandler:  newProjectHandler(projectService),
		galleryHandler:  newGalleryHandler(galleryService),
		userHandler:     newUserHandler(userService),
	}
}
