package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/ticket"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

var errHalfCell = errors.New("both coordinates of a cell must be given")

// MazeController serves maze generation and path queries.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is nil")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.POST("/batch", mc.generateBatch)
	}
}

// RegisterProtected registers routes that need a maze ticket.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/solution", mc.solution)
		mazes.GET("/ascii", mc.ascii)
	}
}

// generate handles single maze requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := mc.mazeService.Generate(ctx.Request.Context(), request.spec())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(generated))
}

// generateBatch handles batch requests.
func (mc *MazeController) generateBatch(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specs := make([]dmn.MazeSpec, 0, len(request.Mazes))
	for _, r := range request.Mazes {
		specs = append(specs, r.spec())
	}

	generated, err := mc.mazeService.GenerateBatch(ctx.Request.Context(), specs)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	response := BatchResponse{Mazes: make([]MazeResponse, 0, len(generated))}
	for _, g := range generated {
		response.Mazes = append(response.Mazes, newMazeResponse(g))
	}
	ctx.JSON(http.StatusCreated, response)
}

// solution finds the path between two cells of the ticket's maze.
func (mc *MazeController) solution(ctx *gin.Context) {
	t, ok := ticket.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing maze ticket"})
		return
	}

	var query SolutionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := optionalCell(query.StartX, query.StartY)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "start: " + err.Error()})
		return
	}
	end, err := optionalCell(query.EndX, query.EndY)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "end: " + err.Error()})
		return
	}

	solution, err := mc.mazeService.Solve(ctx.Request.Context(), t, start, end)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(solution))
}

// ascii renders the ticket's maze as text; ?solution=true overlays the corner-to-corner path.
func (mc *MazeController) ascii(ctx *gin.Context) {
	t, ok := ticket.FromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "missing maze ticket"})
		return
	}

	text, err := mc.mazeService.Render(ctx.Request.Context(), t, ctx.Query("solution") == "true")
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, text)
}

func optionalCell(x, y *int) (*maze.Cell, error) {
	if x == nil && y == nil {
		return nil, nil
	}
	if x == nil || y == nil {
		return nil, errHalfCell
	}
	return &maze.Cell{X: *x, Y: *y}, nil
}

// abortWithError maps service errors to HTTP statuses. Invariant violations are not echoed to clients.
func abortWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrBatchTooLarge):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while processing maze"})
	}
}
