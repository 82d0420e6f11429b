/*
Package ccv provides tools to compare images by Color Coherence Vector, a
texture descriptor that augments a per-channel color histogram with a
spatial-coherence dimension: for each quantized color, how many of its
pixels belong to large connected regions versus small ones.

The technique is based on the paper "Comparing Images Using Color Coherence
Vectors" (Pass, Zabih, Miller).
*/
package ccv
