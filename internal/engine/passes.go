package engine

import (
	"Mariner3D/internal/renderer"
	"Mariner3D/internal/underwater"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Fullscreen quad: clip-space position xy + texcoord
var quadVertices = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	1, 1, 1, 1,
}

// postPipeline owns the GL resources for the underwater post pass chain:
// scene target -> ocean mask -> composite to the backbuffer.
type postPipeline struct {
	width, height int32

	quadVAO uint32
	quadVBO uint32

	sceneFBO   uint32
	sceneColor uint32
	sceneDepth uint32

	maskFBO uint32
	maskTex uint32

	maskShader      renderer.Shader
	compositeShader renderer.Shader
	maskUniforms    *renderer.UniformCache
	compositeUnifs  *renderer.UniformCache
	cleanup         renderer.Unwind
}

func newPostPipeline(width, height int32) *postPipeline {
	p := &postPipeline{width: width, height: height}

	gl.GenVertexArrays(1, &p.quadVAO)
	p.cleanup.Add(func() { gl.DeleteVertexArrays(1, &p.quadVAO) })
	gl.GenBuffers(1, &p.quadVBO)
	p.cleanup.Add(func() { gl.DeleteBuffers(1, &p.quadVBO) })

	gl.BindVertexArray(p.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 16, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 16, gl.PtrOffset(8))
	gl.BindVertexArray(0)

	p.maskShader = renderer.InitOceanMaskShader()
	p.maskShader.Compile()
	p.cleanup.Add(func() { gl.DeleteProgram(p.maskShader.Program()) })
	p.maskUniforms = renderer.NewUniformCache(p.maskShader.Program())

	p.compositeShader = renderer.InitUnderwaterShader()
	p.compositeShader.Compile()
	p.cleanup.Add(func() { gl.DeleteProgram(p.compositeShader.Program()) })
	p.compositeUnifs = renderer.NewUniformCache(p.compositeShader.Program())

	p.createTargets()
	return p
}

// createTargets allocates the scene and mask render targets at the current
// size.
func (p *postPipeline) createTargets() {
	gl.GenTextures(1, &p.sceneColor)
	p.cleanup.Add(func() { gl.DeleteTextures(1, &p.sceneColor) })
	gl.BindTexture(gl.TEXTURE_2D, p.sceneColor)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, p.width, p.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.GenTextures(1, &p.sceneDepth)
	p.cleanup.Add(func() { gl.DeleteTextures(1, &p.sceneDepth) })
	gl.BindTexture(gl.TEXTURE_2D, p.sceneDepth)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, p.width, p.height, 0, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.GenFramebuffers(1, &p.sceneFBO)
	p.cleanup.Add(func() { gl.DeleteFramebuffers(1, &p.sceneFBO) })
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.sceneFBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.sceneColor, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, p.sceneDepth, 0)

	gl.GenTextures(1, &p.maskTex)
	p.cleanup.Add(func() { gl.DeleteTextures(1, &p.maskTex) })
	gl.BindTexture(gl.TEXTURE_2D, p.maskTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, p.width, p.height, 0, gl.RED, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.GenFramebuffers(1, &p.maskFBO)
	p.cleanup.Add(func() { gl.DeleteFramebuffers(1, &p.maskFBO) })
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.maskFBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.maskTex, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// resize drops every GL resource and rebuilds at the new size. Simpler
// than resizing targets in place and it only happens on window resize.
func (p *postPipeline) resize(width, height int32) {
	p.cleanup.Unwind()
	*p = *newPostPipeline(width, height)
}

func (p *postPipeline) destroy() {
	p.cleanup.Unwind()
}

// beginScene binds and clears the scene target. Scene geometry (if any)
// renders here before the post passes read it.
func (p *postPipeline) beginScene() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.sceneFBO)
	gl.Viewport(0, 0, p.width, p.height)
	gl.ClearColor(renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// renderEye runs the mask pass and the composite pass for one eye. The
// composite lands in the backbuffer viewport (x, y, w, h).
func (p *postPipeline) renderEye(effect *underwater.Effect, eye renderer.Eye, x, y, w, h int32) error {
	// Ocean mask pass
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.maskFBO)
	gl.Viewport(0, 0, p.width, p.height)
	p.maskShader.Use()
	if err := effect.BindEye(eye, p.maskUniforms); err != nil {
		return err
	}
	p.drawQuad()

	// Composite pass
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(x, y, w, h)
	p.compositeShader.Use()
	if err := effect.BindEye(eye, p.compositeUnifs); err != nil {
		return err
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.sceneColor)
	p.compositeUnifs.SetInt("sceneTexture", 0)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, p.maskTex)
	p.compositeUnifs.SetInt("maskTexture", 1)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, p.sceneDepth)
	p.compositeUnifs.SetInt("depthTexture", 2)

	p.drawQuad()
	return nil
}

func (p *postPipeline) drawQuad() {
	gl.BindVertexArray(p.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}
