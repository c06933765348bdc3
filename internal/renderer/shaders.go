package renderer

import (
	"fmt"
	"strings"

	"Mariner3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	compiled       bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) IsCompiled() bool {
	return shader.compiled
}

// Compile builds and links the shader program. Requires a current GL
// context.
func (shader *Shader) Compile() {
	vert := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	frag := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vert, frag)
	shader.compiled = true
}

// Fullscreen triangle-pair used by both post passes.
var fullscreenVertexShaderSource = `#version 330 core

layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inTexCoord;

out vec2 fragTexCoord;

void main() {
    fragTexCoord = inTexCoord;
    gl_Position = vec4(inPosition, 0.0, 1.0);
}
` + "\x00"

// Ocean mask pass: classifies each pixel as above or below the water
// surface using the horizon line (position + gradient normal) computed on
// the CPU. The normal points toward the above-water half and its length
// carries the screen-space gradient, so the signed distance works without
// normalization.
var oceanMaskFragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;

uniform vec2 horizonPos;
uniform vec2 horizonNormal;
uniform int forceUnderwater; // fully submerged view, skip the line test
uniform int forceDry;        // fully above-water view

out vec4 FragColor;

void main() {
    if (forceUnderwater == 1) {
        FragColor = vec4(1.0);
        return;
    }
    if (forceDry == 1) {
        FragColor = vec4(0.0);
        return;
    }

    float side = dot(fragTexCoord - horizonPos, horizonNormal);
    float mask = side < 0.0 ? 1.0 : 0.0;
    FragColor = vec4(mask);
}
` + "\x00"

// Underwater composite pass: applies depth fog and a thin meniscus band to
// the rendered scene wherever the mask marks water.
var underwaterFragmentShaderSource = `#version 330 core

in vec2 fragTexCoord;

uniform sampler2D sceneTexture;
uniform sampler2D maskTexture;
uniform sampler2D depthTexture;

uniform vec2 horizonPos;
uniform vec2 horizonNormal;
uniform vec3 depthFogColor;
uniform vec3 depthFogDensity;
uniform float fogFalloff;
uniform float meniscusWidth;
uniform vec3 sunDirection;
uniform vec3 sunColor;
uniform float nearClip;
uniform float farClip;
uniform int cameraSubmerged;
uniform float cameraDepth; // camera depth below the surface, 0 when dry

out vec4 FragColor;

float linearDepth(float z) {
    float ndc = z * 2.0 - 1.0;
    return 2.0 * nearClip * farClip / (farClip + nearClip - ndc * (farClip - nearClip));
}

void main() {
    vec3 scene = texture(sceneTexture, fragTexCoord).rgb;
    float mask = texture(maskTexture, fragTexCoord).r;

    if (mask < 0.5) {
        FragColor = vec4(scene, 1.0);
        return;
    }

    float dist = linearDepth(texture(depthTexture, fragTexCoord).r);
    if (cameraSubmerged == 1) {
        // Light reaching a submerged eye already crossed the water
        // column above it, so the fog ramp starts at the camera depth
        dist += cameraDepth;
    }

    // Exponential per-channel absorption, red falls off first
    vec3 transmittance = exp(-depthFogDensity * dist * fogFalloff);
    vec3 fogged = mix(depthFogColor, scene, transmittance);

    // Faint directional scattering toward the sun, fading with depth
    float scatter = max(dot(sunDirection, vec3(0.0, 1.0, 0.0)), 0.0) * 0.15 * exp(-fogFalloff * cameraDepth);
    fogged += sunColor * scatter * (1.0 - transmittance);

    // Meniscus: darken a thin band along the horizon line
    float side = dot(fragTexCoord - horizonPos, horizonNormal);
    float band = 1.0 - smoothstep(0.0, meniscusWidth, abs(side));
    fogged *= 1.0 - 0.35 * band;

    FragColor = vec4(fogged, 1.0);
}
` + "\x00"

func InitOceanMaskShader() Shader {
	return Shader{
		vertexSource:   fullscreenVertexShaderSource,
		fragmentSource: oceanMaskFragmentShaderSource,
	}
}

func InitUnderwaterShader() Shader {
	return Shader{
		vertexSource:   fullscreenVertexShaderSource,
		fragmentSource: underwaterFragmentShaderSource,
	}
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile", zap.Uint32("shader type:", shaderType), zap.String("log", log))
		fmt.Printf("SHADER COMPILATION ERROR: Type %d, Log: %s\n", shaderType, log)
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
		fmt.Printf("SHADER PROGRAM LINK ERROR: %s\n", log)
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	return program
}
