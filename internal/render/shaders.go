package render

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vTexCoord;

void main() {
	gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
	vNormal = mat3(uModel) * aNormal;
	vTexCoord = aTexCoord;
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform bool uUseLighting;

out vec4 fragColor;

void main() {
	vec4 tex = texture(uTexture, vTexCoord);
	vec3 base = tex.rgb * uDiffuse;
	if (uUseLighting) {
		float ndl = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
		fragColor = vec4(base * (uAmbient + uLightColor * ndl), tex.a);
	} else {
		fragColor = vec4(base, tex.a);
	}
}
`
